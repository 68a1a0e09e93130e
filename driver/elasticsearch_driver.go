package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"book-catalog/search_engine"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// ElasticsearchDriver is the search index client for one index.
type ElasticsearchDriver struct {
	client *elasticsearch.Client
	index  string
}

func NewElasticsearchDriver(client *elasticsearch.Client, index string) *ElasticsearchDriver {
	return &ElasticsearchDriver{
		client: client,
		index:  index,
	}
}

// UpsertDocument indexes the document under its id with a synchronous
// refresh, so the change is searchable as soon as the call returns.
func (d *ElasticsearchDriver) UpsertDocument(ctx context.Context, doc SearchDocumentDriver) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return &DriverError{Op: "UpsertDocument", Err: err.Error()}
	}

	res, err := d.client.Index(
		d.index,
		bytes.NewReader(body),
		d.client.Index.WithDocumentID(doc.ID),
		d.client.Index.WithRefresh("true"),
		d.client.Index.WithContext(ctx),
	)
	if err != nil {
		return &DriverError{Op: "UpsertDocument", Err: err.Error()}
	}
	defer res.Body.Close()

	if res.IsError() {
		return &DriverError{Op: "UpsertDocument", Err: responseError(res)}
	}
	return nil
}

// DeleteDocument removes the document with a synchronous refresh. A 404 from
// the engine is success: the index may already be absent for that id.
func (d *ElasticsearchDriver) DeleteDocument(ctx context.Context, id string) error {
	res, err := d.client.Delete(
		d.index,
		id,
		d.client.Delete.WithRefresh("true"),
		d.client.Delete.WithContext(ctx),
	)
	if err != nil {
		return &DriverError{Op: "DeleteDocument", Err: err.Error()}
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return &DriverError{Op: "DeleteDocument", Err: responseError(res)}
	}
	return nil
}

// Search executes the structured query and returns the raw page: hits with
// their ids, the total match count and the facet buckets.
func (d *ElasticsearchDriver) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	body, err := json.Marshal(search_engine.BuildSearchBody(search_engine.SearchParams{
		Text:     req.Text,
		Category: req.Category,
		Author:   req.Author,
		From:     req.From,
		Size:     req.Size,
	}))
	if err != nil {
		return nil, &DriverError{Op: "Search", Err: err.Error()}
	}

	res, err := d.client.Search(
		d.client.Search.WithIndex(d.index),
		d.client.Search.WithBody(bytes.NewReader(body)),
		d.client.Search.WithTrackTotalHits(true),
		d.client.Search.WithContext(ctx),
	)
	if err != nil {
		return nil, &DriverError{Op: "Search", Err: err.Error()}
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, &DriverError{Op: "Search", Err: responseError(res)}
	}

	var parsed esSearchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, &DriverError{Op: "Search", Err: "decode response: " + err.Error()}
	}

	return parsed.toSearchResult(), nil
}

// Suggest runs the fuzzy completion suggester and returns the suggested
// titles in the engine's relevance order.
func (d *ElasticsearchDriver) Suggest(ctx context.Context, prefix string, size int) ([]string, error) {
	body, err := json.Marshal(search_engine.BuildSuggestBody(prefix, size))
	if err != nil {
		return nil, &DriverError{Op: "Suggest", Err: err.Error()}
	}

	res, err := d.client.Search(
		d.client.Search.WithIndex(d.index),
		d.client.Search.WithBody(bytes.NewReader(body)),
		d.client.Search.WithContext(ctx),
	)
	if err != nil {
		return nil, &DriverError{Op: "Suggest", Err: err.Error()}
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, &DriverError{Op: "Suggest", Err: responseError(res)}
	}

	var parsed esSuggestResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, &DriverError{Op: "Suggest", Err: "decode response: " + err.Error()}
	}

	suggestions := make([]string, 0)
	for _, entry := range parsed.Suggest[search_engine.SuggesterName] {
		for _, option := range entry.Options {
			suggestions = append(suggestions, option.Text)
		}
	}
	return suggestions, nil
}

// EnsureIndex creates the index with its schema unless it already exists.
func (d *ElasticsearchDriver) EnsureIndex(ctx context.Context) error {
	res, err := d.client.Indices.Exists(
		[]string{d.index},
		d.client.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return &DriverError{Op: "EnsureIndex", Err: err.Error()}
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	if res.StatusCode != http.StatusNotFound {
		return &DriverError{Op: "EnsureIndex", Err: responseError(res)}
	}

	schema, err := json.Marshal(search_engine.IndexSchema())
	if err != nil {
		return &DriverError{Op: "EnsureIndex", Err: err.Error()}
	}

	createRes, err := d.client.Indices.Create(
		d.index,
		d.client.Indices.Create.WithBody(bytes.NewReader(schema)),
		d.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return &DriverError{Op: "EnsureIndex", Err: err.Error()}
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		return &DriverError{Op: "EnsureIndex", Err: responseError(createRes)}
	}
	return nil
}

type esSearchResponse struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []struct {
			ID     string   `json:"_id"`
			Source esSource `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
	Aggregations struct {
		Authors esTermsAggregation `json:"authors"`
		Years   esTermsAggregation `json:"years"`
	} `json:"aggregations"`
}

type esSource struct {
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	Category      string     `json:"category"`
	PublishedDate *time.Time `json:"published_date,omitempty"`
}

type esTermsAggregation struct {
	Buckets []struct {
		Key         any    `json:"key"`
		KeyAsString string `json:"key_as_string"`
		DocCount    int64  `json:"doc_count"`
	} `json:"buckets"`
}

type esSuggestResponse struct {
	Suggest map[string][]struct {
		Options []struct {
			Text string `json:"text"`
		} `json:"options"`
	} `json:"suggest"`
}

func (r *esSearchResponse) toSearchResult() *SearchResult {
	result := &SearchResult{
		Total:         r.Hits.Total.Value,
		Hits:          make([]SearchHit, 0, len(r.Hits.Hits)),
		AuthorBuckets: make(map[string]int64, len(r.Aggregations.Authors.Buckets)),
		YearBuckets:   make(map[string]int64, len(r.Aggregations.Years.Buckets)),
	}

	for _, hit := range r.Hits.Hits {
		result.Hits = append(result.Hits, SearchHit{
			ID:            hit.ID,
			Title:         hit.Source.Title,
			Author:        hit.Source.Author,
			Category:      hit.Source.Category,
			PublishedDate: hit.Source.PublishedDate,
		})
	}

	for _, bucket := range r.Aggregations.Authors.Buckets {
		if key, ok := bucket.Key.(string); ok {
			result.AuthorBuckets[key] = bucket.DocCount
		}
	}

	// Year buckets come from a date_histogram keyed by epoch millis; the
	// formatted key carries the yyyy rendering.
	for _, bucket := range r.Aggregations.Years.Buckets {
		if bucket.KeyAsString != "" {
			result.YearBuckets[bucket.KeyAsString] = bucket.DocCount
		}
	}

	return result
}

func responseError(res *esapi.Response) string {
	snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
	return res.Status() + ": " + string(snippet)
}

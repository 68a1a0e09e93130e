package gateway

import (
	"context"

	"book-catalog/domain"
	"book-catalog/driver"
)

type SearchDriver interface {
	UpsertDocument(ctx context.Context, doc driver.SearchDocumentDriver) error
	DeleteDocument(ctx context.Context, id string) error
	Search(ctx context.Context, req driver.SearchRequest) (*driver.SearchResult, error)
	Suggest(ctx context.Context, prefix string, size int) ([]string, error)
	EnsureIndex(ctx context.Context) error
}

// SearchEngineGateway adapts the search index driver to the domain search
// engine port.
type SearchEngineGateway struct {
	driver SearchDriver
}

func NewSearchEngineGateway(driver SearchDriver) *SearchEngineGateway {
	return &SearchEngineGateway{
		driver: driver,
	}
}

func (g *SearchEngineGateway) UpsertDocument(ctx context.Context, doc domain.SearchDocument) error {
	err := g.driver.UpsertDocument(ctx, driver.SearchDocumentDriver{
		ID:            doc.ID,
		Title:         doc.Title,
		Author:        doc.Author,
		Category:      doc.Category,
		PublishedDate: doc.PublishedDate,
	})
	if err != nil {
		return &domain.SearchEngineError{
			Op:  "UpsertDocument",
			Err: err.Error(),
		}
	}
	return nil
}

func (g *SearchEngineGateway) DeleteDocument(ctx context.Context, id string) error {
	if err := g.driver.DeleteDocument(ctx, id); err != nil {
		return &domain.SearchEngineError{
			Op:  "DeleteDocument",
			Err: err.Error(),
		}
	}
	return nil
}

func (g *SearchEngineGateway) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResultPage, error) {
	result, err := g.driver.Search(ctx, driver.SearchRequest{
		Text:     query.Text,
		Category: query.Category,
		Author:   query.Author,
		From:     query.Offset(),
		Size:     query.Size,
	})
	if err != nil {
		return nil, &domain.SearchEngineError{
			Op:  "Search",
			Err: err.Error(),
		}
	}

	return g.convertResult(result), nil
}

func (g *SearchEngineGateway) Suggest(ctx context.Context, prefix string, size int) ([]string, error) {
	suggestions, err := g.driver.Suggest(ctx, prefix, size)
	if err != nil {
		return nil, &domain.SearchEngineError{
			Op:  "Suggest",
			Err: err.Error(),
		}
	}
	return suggestions, nil
}

func (g *SearchEngineGateway) EnsureIndex(ctx context.Context) error {
	if err := g.driver.EnsureIndex(ctx); err != nil {
		return &domain.SearchEngineError{
			Op:  "EnsureIndex",
			Err: err.Error(),
		}
	}
	return nil
}

func (g *SearchEngineGateway) convertResult(result *driver.SearchResult) *domain.SearchResultPage {
	hits := make([]domain.SearchDocument, len(result.Hits))
	for i, hit := range result.Hits {
		hits[i] = domain.SearchDocument{
			ID:            hit.ID,
			Title:         hit.Title,
			Author:        hit.Author,
			Category:      hit.Category,
			PublishedDate: hit.PublishedDate,
		}
	}

	return &domain.SearchResultPage{
		Total: result.Total,
		Hits:  hits,
		Aggregations: domain.Aggregations{
			Authors: result.AuthorBuckets,
			Years:   result.YearBuckets,
		},
	}
}

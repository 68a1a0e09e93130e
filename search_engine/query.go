// Package search_engine builds Elasticsearch request bodies for the book
// index. Query construction is kept separate from the driver so the DSL can
// be unit tested without a running engine.
package search_engine

// SuggesterName keys the completion suggester in requests and responses.
const SuggesterName = "book_suggest"

// SearchParams are the inputs to a structured search: optional filter axes
// plus a zero-based offset and page size. Normalization of pagination is the
// caller's concern.
type SearchParams struct {
	Text     string
	Category string
	Author   string
	From     int
	Size     int
}

// BuildSearchBody translates SearchParams into the engine query DSL. Present
// filter axes are ANDed inside bool.must; a query with no filters matches
// all documents. Facet aggregations over author and publication year are
// always requested.
func BuildSearchBody(p SearchParams) map[string]any {
	must := make([]map[string]any, 0, 3)

	if p.Text != "" {
		// Free text matches title OR author, tolerating small typos and
		// same-sounding spellings.
		must = append(must, map[string]any{
			"bool": map[string]any{
				"should": []map[string]any{
					{"match": map[string]any{"title": map[string]any{"query": p.Text, "fuzziness": "AUTO"}}},
					{"match": map[string]any{"author": map[string]any{"query": p.Text, "fuzziness": "AUTO"}}},
					{"match": map[string]any{"title.phonetic": map[string]any{"query": p.Text}}},
					{"match": map[string]any{"author.phonetic": map[string]any{"query": p.Text}}},
				},
			},
		})
	}

	if p.Category != "" {
		// Exact, case-sensitive term match. Unknown values are passed
		// through and simply match nothing.
		must = append(must, map[string]any{
			"term": map[string]any{"category": p.Category},
		})
	}

	if p.Author != "" {
		must = append(must, map[string]any{
			"match": map[string]any{"author": map[string]any{"query": p.Author, "fuzziness": "AUTO"}},
		})
	}

	var query map[string]any
	if len(must) == 0 {
		query = map[string]any{"match_all": map[string]any{}}
	} else {
		query = map[string]any{"bool": map[string]any{"must": must}}
	}

	return map[string]any{
		"query": query,
		"aggs": map[string]any{
			"authors": map[string]any{
				"terms": map[string]any{"field": "author.keyword"},
			},
			"years": map[string]any{
				"date_histogram": map[string]any{
					"field":             "published_date",
					"calendar_interval": "year",
					"format":            "yyyy",
				},
			},
		},
		"from": p.From,
		"size": p.Size,
	}
}

// BuildSuggestBody builds a fuzzy completion-suggester request over the
// title completion field.
func BuildSuggestBody(prefix string, size int) map[string]any {
	return map[string]any{
		"suggest": map[string]any{
			SuggesterName: map[string]any{
				"prefix": prefix,
				"completion": map[string]any{
					"field": "title.suggest",
					"size":  size,
					"fuzzy": map[string]any{"fuzziness": "AUTO"},
				},
			},
		},
	}
}

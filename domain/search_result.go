package domain

// Aggregations holds facet counts for a result page: matching documents
// grouped by exact author value and by publication year.
type Aggregations struct {
	Authors map[string]int64
	Years   map[string]int64
}

// SearchResultPage is one page of search results together with the total
// match count and the facet counts computed over the whole match set. Hits
// carry the indexed projection, field values passed through unmodified.
type SearchResultPage struct {
	Total        int64
	Hits         []SearchDocument
	Aggregations Aggregations
}

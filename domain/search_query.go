package domain

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// SearchQuery is the per-request combination of an optional free-text term,
// optional structured filters and 1-based pagination.
type SearchQuery struct {
	Text     string
	Category string
	Author   string
	Page     int
	Size     int
}

// Normalized returns a copy with pagination clamped to valid values:
// page < 1 becomes 1, size <= 0 becomes the default, size above the cap is
// clamped to the cap. Filters are passed through untouched.
func (q SearchQuery) Normalized() SearchQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Size <= 0 {
		q.Size = DefaultPageSize
	}
	if q.Size > MaxPageSize {
		q.Size = MaxPageSize
	}
	return q
}

// Offset is the zero-based result offset for the requested page.
func (q SearchQuery) Offset() int {
	return (q.Page - 1) * q.Size
}

// IsEmpty reports whether no filter axis is set, in which case the query
// matches all documents.
func (q SearchQuery) IsEmpty() bool {
	return q.Text == "" && q.Category == "" && q.Author == ""
}

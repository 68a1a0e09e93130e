package driver

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookRecord is a book document as stored in MongoDB.
type BookRecord struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Author        string             `bson:"author"`
	Category      string             `bson:"category"`
	PublishedDate *time.Time         `bson:"published_date,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

// BookFields carries the caller-supplied attributes for a new record.
type BookFields struct {
	Title         string
	Author        string
	Category      string
	PublishedDate *time.Time
}

// SearchDocumentDriver is a book document as stored in the search index.
// The id is the engine document id, not part of the source body.
type SearchDocumentDriver struct {
	ID            string     `json:"-"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	Category      string     `json:"category"`
	PublishedDate *time.Time `json:"published_date,omitempty"`
}

// SearchRequest mirrors the structured query at the driver boundary.
// From/Size are already normalized by the caller.
type SearchRequest struct {
	Text     string
	Category string
	Author   string
	From     int
	Size     int
}

// SearchHit is one matching document returned by the engine.
type SearchHit struct {
	ID            string
	Title         string
	Author        string
	Category      string
	PublishedDate *time.Time
}

// SearchResult is the raw engine output for one query: total match count,
// the requested page of hits and the facet buckets.
type SearchResult struct {
	Total         int64
	Hits          []SearchHit
	AuthorBuckets map[string]int64
	YearBuckets   map[string]int64
}

// DriverError represents an error from the driver layer.
type DriverError struct {
	Op  string
	Err string
}

func (e *DriverError) Error() string {
	return e.Op + ": " + e.Err
}

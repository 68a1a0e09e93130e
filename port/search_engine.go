package port

import (
	"context"

	"book-catalog/domain"
)

// SearchEngine is the search index contract. Mutations refresh the index
// synchronously so subsequent searches observe them immediately.
type SearchEngine interface {
	// UpsertDocument indexes the document under its id, replacing any
	// previous version.
	UpsertDocument(ctx context.Context, doc domain.SearchDocument) error
	// DeleteDocument removes the document. Deleting an id that is absent
	// from the index is a success (idempotent).
	DeleteDocument(ctx context.Context, id string) error
	// Search executes the structured query and returns one result page.
	Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResultPage, error)
	// Suggest returns up to size title completions for the prefix, most
	// relevant first.
	Suggest(ctx context.Context, prefix string, size int) ([]string, error)
	// EnsureIndex creates the index with its schema if it does not exist.
	// Idempotent; called once at startup.
	EnsureIndex(ctx context.Context) error
}

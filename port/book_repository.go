package port

import (
	"context"

	"book-catalog/domain"
)

// BookRepository is the record store contract. The store assigns identifiers
// on creation and owns the record timestamps.
type BookRepository interface {
	// Create persists a new record and returns it with its assigned id.
	Create(ctx context.Context, fields domain.BookFields) (*domain.Book, error)
	// DeleteByID removes the record and returns its prior value.
	// Returns domain.ErrBookNotFound when no record exists for the id.
	DeleteByID(ctx context.Context, id string) (*domain.Book, error)
}

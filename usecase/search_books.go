package usecase

import (
	"context"
	"fmt"

	"book-catalog/domain"
	"book-catalog/port"
)

const maxQueryLength = 1000

// SearchBooksUsecase executes a structured catalog search.
type SearchBooksUsecase struct {
	searchEngine port.SearchEngine
}

func NewSearchBooksUsecase(searchEngine port.SearchEngine) *SearchBooksUsecase {
	return &SearchBooksUsecase{
		searchEngine: searchEngine,
	}
}

// Execute normalizes pagination and runs the query. An empty query (no text,
// no filters) is valid and matches the whole catalog.
func (u *SearchBooksUsecase) Execute(ctx context.Context, query domain.SearchQuery) (*domain.SearchResultPage, error) {
	if len(query.Text) > maxQueryLength {
		return nil, fmt.Errorf("query too long: maximum %d characters, got %d", maxQueryLength, len(query.Text))
	}

	page, err := u.searchEngine.Search(ctx, query.Normalized())
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}

	return page, nil
}

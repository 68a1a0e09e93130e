package usecase

import (
	"context"
	"fmt"

	"book-catalog/domain"
	"book-catalog/logger"
	"book-catalog/port"
)

// DeleteBookUsecase removes a record from the store and then from the search
// index. A missing record surfaces as domain.ErrBookNotFound; a missing
// index document is a success (the delete is idempotent on the index side).
type DeleteBookUsecase struct {
	books        port.BookRepository
	searchEngine port.SearchEngine
}

func NewDeleteBookUsecase(books port.BookRepository, searchEngine port.SearchEngine) *DeleteBookUsecase {
	return &DeleteBookUsecase{
		books:        books,
		searchEngine: searchEngine,
	}
}

func (u *DeleteBookUsecase) Execute(ctx context.Context, id string) (*domain.Book, error) {
	book, err := u.books.DeleteByID(ctx, id)
	if err != nil {
		// ErrBookNotFound passes through untouched so callers can report
		// it distinctly from store failures.
		return nil, err
	}

	if err := u.searchEngine.DeleteDocument(ctx, id); err != nil {
		logger.Logger.Error("book deleted from store but not from index",
			"operation", "DeleteBook",
			"book_id", id,
			"err", err,
		)
		return nil, fmt.Errorf("remove book %s from index: %w", id, err)
	}

	return book, nil
}

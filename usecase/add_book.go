package usecase

import (
	"context"
	"fmt"

	"book-catalog/domain"
	"book-catalog/logger"
	"book-catalog/port"
)

// AddBookUsecase persists a new record and mirrors it into the search index.
// The two writes are strictly ordered and not transactional: a failed index
// write leaves the record persisted but unindexed, which is reported to the
// caller and logged for manual reconciliation.
type AddBookUsecase struct {
	books        port.BookRepository
	searchEngine port.SearchEngine
}

func NewAddBookUsecase(books port.BookRepository, searchEngine port.SearchEngine) *AddBookUsecase {
	return &AddBookUsecase{
		books:        books,
		searchEngine: searchEngine,
	}
}

func (u *AddBookUsecase) Execute(ctx context.Context, fields domain.BookFields) (*domain.Book, error) {
	book, err := u.books.Create(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("persist book: %w", err)
	}

	if err := u.searchEngine.UpsertDocument(ctx, domain.NewSearchDocument(book)); err != nil {
		logger.Logger.Error("book persisted but not indexed",
			"operation", "AddBook",
			"book_id", book.ID(),
			"err", err,
		)
		return nil, fmt.Errorf("index book %s: %w", book.ID(), err)
	}

	return book, nil
}

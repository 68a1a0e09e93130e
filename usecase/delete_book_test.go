package usecase

import (
	"context"
	"errors"
	"testing"

	"book-catalog/domain"
)

func TestDeleteBookExecute(t *testing.T) {
	removed := newTestBook(t, "abc123", domain.BookFields{Title: "Dune"})

	var deletedFromIndex string
	repo := &mockBookRepository{
		deleteByIDFunc: func(ctx context.Context, id string) (*domain.Book, error) {
			return removed, nil
		},
	}
	engine := &mockSearchEngine{
		deleteFunc: func(ctx context.Context, id string) error {
			deletedFromIndex = id
			return nil
		},
	}

	usecase := NewDeleteBookUsecase(repo, engine)
	book, err := usecase.Execute(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book.Title() != "Dune" {
		t.Errorf("returned book title = %q, want %q", book.Title(), "Dune")
	}
	if deletedFromIndex != "abc123" {
		t.Errorf("index delete id = %q, want %q", deletedFromIndex, "abc123")
	}
}

func TestDeleteBookNotFound(t *testing.T) {
	indexCalled := false
	repo := &mockBookRepository{
		deleteByIDFunc: func(ctx context.Context, id string) (*domain.Book, error) {
			return nil, domain.ErrBookNotFound
		},
	}
	engine := &mockSearchEngine{
		deleteFunc: func(ctx context.Context, id string) error {
			indexCalled = true
			return nil
		},
	}

	usecase := NewDeleteBookUsecase(repo, engine)
	_, err := usecase.Execute(context.Background(), "missing")
	if !errors.Is(err, domain.ErrBookNotFound) {
		t.Errorf("error = %v, want ErrBookNotFound", err)
	}
	if indexCalled {
		t.Error("index must not be touched when the record does not exist")
	}

	// A second delete of the same id behaves identically.
	_, err = usecase.Execute(context.Background(), "missing")
	if !errors.Is(err, domain.ErrBookNotFound) {
		t.Errorf("repeat delete error = %v, want ErrBookNotFound", err)
	}
}

func TestDeleteBookIndexFailure(t *testing.T) {
	indexErr := errors.New("index unavailable")
	repo := &mockBookRepository{
		deleteByIDFunc: func(ctx context.Context, id string) (*domain.Book, error) {
			return newTestBook(t, id, domain.BookFields{Title: "Dune"}), nil
		},
	}
	engine := &mockSearchEngine{
		deleteFunc: func(ctx context.Context, id string) error {
			return indexErr
		},
	}

	usecase := NewDeleteBookUsecase(repo, engine)
	_, err := usecase.Execute(context.Background(), "abc123")
	if !errors.Is(err, indexErr) {
		t.Errorf("error = %v, want wrapped %v", err, indexErr)
	}
}

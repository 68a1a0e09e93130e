package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"book-catalog/domain"
)

func TestSearchBooksNormalizesPagination(t *testing.T) {
	var received domain.SearchQuery
	engine := &mockSearchEngine{
		searchFunc: func(ctx context.Context, query domain.SearchQuery) (*domain.SearchResultPage, error) {
			received = query
			return &domain.SearchResultPage{}, nil
		},
	}

	usecase := NewSearchBooksUsecase(engine)
	_, err := usecase.Execute(context.Background(), domain.SearchQuery{Text: "dune", Page: 0, Size: -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if received.Page != 1 {
		t.Errorf("page = %d, want 1", received.Page)
	}
	if received.Size != domain.DefaultPageSize {
		t.Errorf("size = %d, want %d", received.Size, domain.DefaultPageSize)
	}
	if received.Text != "dune" {
		t.Errorf("text = %q, want %q", received.Text, "dune")
	}
}

func TestSearchBooksEmptyQueryAllowed(t *testing.T) {
	engine := &mockSearchEngine{
		searchFunc: func(ctx context.Context, query domain.SearchQuery) (*domain.SearchResultPage, error) {
			return &domain.SearchResultPage{Total: 42}, nil
		},
	}

	usecase := NewSearchBooksUsecase(engine)
	page, err := usecase.Execute(context.Background(), domain.SearchQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 42 {
		t.Errorf("total = %d, want 42", page.Total)
	}
}

func TestSearchBooksQueryTooLong(t *testing.T) {
	called := false
	engine := &mockSearchEngine{
		searchFunc: func(ctx context.Context, query domain.SearchQuery) (*domain.SearchResultPage, error) {
			called = true
			return &domain.SearchResultPage{}, nil
		},
	}

	usecase := NewSearchBooksUsecase(engine)
	_, err := usecase.Execute(context.Background(), domain.SearchQuery{Text: strings.Repeat("a", maxQueryLength+1)})
	if err == nil {
		t.Fatal("expected error for oversized query")
	}
	if called {
		t.Error("engine must not be queried for oversized input")
	}
}

func TestSearchBooksEngineFailure(t *testing.T) {
	engineErr := errors.New("engine down")
	engine := &mockSearchEngine{
		searchFunc: func(ctx context.Context, query domain.SearchQuery) (*domain.SearchResultPage, error) {
			return nil, engineErr
		},
	}

	usecase := NewSearchBooksUsecase(engine)
	_, err := usecase.Execute(context.Background(), domain.SearchQuery{Text: "dune"})
	if !errors.Is(err, engineErr) {
		t.Errorf("error = %v, want wrapped %v", err, engineErr)
	}
}

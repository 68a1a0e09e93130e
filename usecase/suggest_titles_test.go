package usecase

import (
	"context"
	"errors"
	"testing"

	"book-catalog/domain"
)

func TestSuggestTitlesExecute(t *testing.T) {
	var gotPrefix string
	var gotSize int
	engine := &mockSearchEngine{
		suggestFunc: func(ctx context.Context, prefix string, size int) ([]string, error) {
			gotPrefix = prefix
			gotSize = size
			return []string{"Dune", "Dune Messiah"}, nil
		},
	}

	usecase := NewSuggestTitlesUsecase(engine, 5)
	suggestions, err := usecase.Execute(context.Background(), "du")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPrefix != "du" {
		t.Errorf("prefix = %q, want %q", gotPrefix, "du")
	}
	if gotSize != 5 {
		t.Errorf("size = %d, want 5", gotSize)
	}
	if len(suggestions) != 2 || suggestions[0] != "Dune" {
		t.Errorf("unexpected suggestions: %v", suggestions)
	}
}

func TestSuggestTitlesEmptyPrefix(t *testing.T) {
	called := false
	engine := &mockSearchEngine{
		suggestFunc: func(ctx context.Context, prefix string, size int) ([]string, error) {
			called = true
			return nil, nil
		},
	}

	usecase := NewSuggestTitlesUsecase(engine, 5)
	for _, prefix := range []string{"", "   ", "\t\n"} {
		if _, err := usecase.Execute(context.Background(), prefix); !errors.Is(err, domain.ErrEmptyPrefix) {
			t.Errorf("prefix %q: error = %v, want ErrEmptyPrefix", prefix, err)
		}
	}
	if called {
		t.Error("engine must not be queried for a blank prefix")
	}
}

func TestSuggestTitlesEngineFailure(t *testing.T) {
	engineErr := errors.New("engine down")
	engine := &mockSearchEngine{
		suggestFunc: func(ctx context.Context, prefix string, size int) ([]string, error) {
			return nil, engineErr
		},
	}

	usecase := NewSuggestTitlesUsecase(engine, 5)
	if _, err := usecase.Execute(context.Background(), "du"); !errors.Is(err, engineErr) {
		t.Errorf("error = %v, want wrapped %v", err, engineErr)
	}
}

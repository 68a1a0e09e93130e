package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"book-catalog/domain"
	"book-catalog/driver"
)

type mockSearchDriver struct {
	upsertFunc      func(ctx context.Context, doc driver.SearchDocumentDriver) error
	deleteFunc      func(ctx context.Context, id string) error
	searchFunc      func(ctx context.Context, req driver.SearchRequest) (*driver.SearchResult, error)
	suggestFunc     func(ctx context.Context, prefix string, size int) ([]string, error)
	ensureIndexFunc func(ctx context.Context) error
}

func (m *mockSearchDriver) UpsertDocument(ctx context.Context, doc driver.SearchDocumentDriver) error {
	return m.upsertFunc(ctx, doc)
}

func (m *mockSearchDriver) DeleteDocument(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockSearchDriver) Search(ctx context.Context, req driver.SearchRequest) (*driver.SearchResult, error) {
	return m.searchFunc(ctx, req)
}

func (m *mockSearchDriver) Suggest(ctx context.Context, prefix string, size int) ([]string, error) {
	return m.suggestFunc(ctx, prefix, size)
}

func (m *mockSearchDriver) EnsureIndex(ctx context.Context) error {
	return m.ensureIndexFunc(ctx)
}

func TestSearchEngineGatewaySearch(t *testing.T) {
	published := time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC)

	var received driver.SearchRequest
	mock := &mockSearchDriver{
		searchFunc: func(ctx context.Context, req driver.SearchRequest) (*driver.SearchResult, error) {
			received = req
			return &driver.SearchResult{
				Total: 27,
				Hits: []driver.SearchHit{
					{ID: "abc123", Title: "Dune", Author: "Frank Herbert", Category: "science", PublishedDate: &published},
				},
				AuthorBuckets: map[string]int64{"Frank Herbert": 6},
				YearBuckets:   map[string]int64{"1965": 1},
			}, nil
		},
	}

	gw := NewSearchEngineGateway(mock)
	page, err := gw.Search(context.Background(), domain.SearchQuery{Text: "dune", Page: 3, Size: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Page/size become a zero-based offset at the driver boundary.
	if received.From != 8 || received.Size != 4 {
		t.Errorf("from/size = %d/%d, want 8/4", received.From, received.Size)
	}
	if received.Text != "dune" {
		t.Errorf("text = %q, want %q", received.Text, "dune")
	}

	if page.Total != 27 {
		t.Errorf("total = %d, want 27", page.Total)
	}
	if len(page.Hits) != 1 || page.Hits[0].ID != "abc123" || page.Hits[0].Title != "Dune" {
		t.Errorf("unexpected hits: %+v", page.Hits)
	}
	if page.Aggregations.Authors["Frank Herbert"] != 6 {
		t.Errorf("author bucket = %d, want 6", page.Aggregations.Authors["Frank Herbert"])
	}
	if page.Aggregations.Years["1965"] != 1 {
		t.Errorf("year bucket = %d, want 1", page.Aggregations.Years["1965"])
	}
}

func TestSearchEngineGatewaySearchFailure(t *testing.T) {
	mock := &mockSearchDriver{
		searchFunc: func(ctx context.Context, req driver.SearchRequest) (*driver.SearchResult, error) {
			return nil, errors.New("engine down")
		},
	}

	gw := NewSearchEngineGateway(mock)
	_, err := gw.Search(context.Background(), domain.SearchQuery{Page: 1, Size: 10})

	var engineErr *domain.SearchEngineError
	if !errors.As(err, &engineErr) {
		t.Fatalf("error = %v, want *domain.SearchEngineError", err)
	}
	if engineErr.Op != "Search" {
		t.Errorf("op = %q, want %q", engineErr.Op, "Search")
	}
}

func TestSearchEngineGatewayUpsertDocument(t *testing.T) {
	var indexed driver.SearchDocumentDriver
	mock := &mockSearchDriver{
		upsertFunc: func(ctx context.Context, doc driver.SearchDocumentDriver) error {
			indexed = doc
			return nil
		},
	}

	gw := NewSearchEngineGateway(mock)
	err := gw.UpsertDocument(context.Background(), domain.SearchDocument{
		ID:     "abc123",
		Title:  "Dune",
		Author: "Frank Herbert",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if indexed.ID != "abc123" || indexed.Title != "Dune" {
		t.Errorf("unexpected indexed document: %+v", indexed)
	}
}

func TestSearchEngineGatewayErrorWrapping(t *testing.T) {
	driverErr := errors.New("engine down")
	mock := &mockSearchDriver{
		upsertFunc:      func(ctx context.Context, doc driver.SearchDocumentDriver) error { return driverErr },
		deleteFunc:      func(ctx context.Context, id string) error { return driverErr },
		suggestFunc:     func(ctx context.Context, prefix string, size int) ([]string, error) { return nil, driverErr },
		ensureIndexFunc: func(ctx context.Context) error { return driverErr },
	}

	gw := NewSearchEngineGateway(mock)
	checks := []struct {
		op  string
		err error
	}{
		{"UpsertDocument", gw.UpsertDocument(context.Background(), domain.SearchDocument{ID: "x"})},
		{"DeleteDocument", gw.DeleteDocument(context.Background(), "x")},
		{"EnsureIndex", gw.EnsureIndex(context.Background())},
	}
	if _, err := gw.Suggest(context.Background(), "du", 5); err != nil {
		checks = append(checks, struct {
			op  string
			err error
		}{"Suggest", err})
	}

	for _, c := range checks {
		var engineErr *domain.SearchEngineError
		if !errors.As(c.err, &engineErr) {
			t.Errorf("%s: error = %v, want *domain.SearchEngineError", c.op, c.err)
			continue
		}
		if engineErr.Op != c.op {
			t.Errorf("op = %q, want %q", engineErr.Op, c.op)
		}
	}
}

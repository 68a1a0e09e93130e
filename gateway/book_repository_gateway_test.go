package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"book-catalog/domain"
	"book-catalog/driver"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockBookDriver struct {
	createBookFunc     func(ctx context.Context, fields driver.BookFields) (*driver.BookRecord, error)
	deleteBookByIDFunc func(ctx context.Context, id string) (*driver.BookRecord, error)
}

func (m *mockBookDriver) CreateBook(ctx context.Context, fields driver.BookFields) (*driver.BookRecord, error) {
	return m.createBookFunc(ctx, fields)
}

func (m *mockBookDriver) DeleteBookByID(ctx context.Context, id string) (*driver.BookRecord, error) {
	return m.deleteBookByIDFunc(ctx, id)
}

func TestBookRepositoryGatewayCreate(t *testing.T) {
	oid := primitive.NewObjectID()
	published := time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	mock := &mockBookDriver{
		createBookFunc: func(ctx context.Context, fields driver.BookFields) (*driver.BookRecord, error) {
			return &driver.BookRecord{
				ID:            oid,
				Title:         fields.Title,
				Author:        fields.Author,
				Category:      fields.Category,
				PublishedDate: fields.PublishedDate,
				CreatedAt:     now,
				UpdatedAt:     now,
			}, nil
		},
	}

	gw := NewBookRepositoryGateway(mock)
	book, err := gw.Create(context.Background(), domain.BookFields{
		Title:         "Dune",
		Author:        "Frank Herbert",
		Category:      "science",
		PublishedDate: &published,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if book.ID() != oid.Hex() {
		t.Errorf("id = %q, want %q", book.ID(), oid.Hex())
	}
	if book.Title() != "Dune" || book.Author() != "Frank Herbert" {
		t.Errorf("unexpected book: title=%q author=%q", book.Title(), book.Author())
	}
	if book.PublishedDate() == nil || !book.PublishedDate().Equal(published) {
		t.Errorf("published date = %v, want %v", book.PublishedDate(), published)
	}
}

func TestBookRepositoryGatewayCreateFailure(t *testing.T) {
	mock := &mockBookDriver{
		createBookFunc: func(ctx context.Context, fields driver.BookFields) (*driver.BookRecord, error) {
			return nil, errors.New("connection reset")
		},
	}

	gw := NewBookRepositoryGateway(mock)
	_, err := gw.Create(context.Background(), domain.BookFields{Title: "Dune"})

	var repoErr *domain.RepositoryError
	if !errors.As(err, &repoErr) {
		t.Fatalf("error = %v, want *domain.RepositoryError", err)
	}
	if repoErr.Op != "Create" {
		t.Errorf("op = %q, want %q", repoErr.Op, "Create")
	}
}

func TestBookRepositoryGatewayDeleteNotFound(t *testing.T) {
	mock := &mockBookDriver{
		deleteBookByIDFunc: func(ctx context.Context, id string) (*driver.BookRecord, error) {
			return nil, driver.ErrRecordNotFound
		},
	}

	gw := NewBookRepositoryGateway(mock)
	_, err := gw.DeleteByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrBookNotFound) {
		t.Errorf("error = %v, want ErrBookNotFound", err)
	}
}

func TestBookRepositoryGatewayDeleteByID(t *testing.T) {
	oid := primitive.NewObjectID()
	now := time.Now().UTC()

	mock := &mockBookDriver{
		deleteBookByIDFunc: func(ctx context.Context, id string) (*driver.BookRecord, error) {
			return &driver.BookRecord{
				ID:        oid,
				Title:     "Dune",
				CreatedAt: now,
				UpdatedAt: now,
			}, nil
		},
	}

	gw := NewBookRepositoryGateway(mock)
	book, err := gw.DeleteByID(context.Background(), oid.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book.ID() != oid.Hex() || book.Title() != "Dune" {
		t.Errorf("unexpected book: id=%q title=%q", book.ID(), book.Title())
	}
}

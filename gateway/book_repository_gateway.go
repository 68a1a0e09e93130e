package gateway

import (
	"context"
	"errors"

	"book-catalog/domain"
	"book-catalog/driver"
)

type BookDriver interface {
	CreateBook(ctx context.Context, fields driver.BookFields) (*driver.BookRecord, error)
	DeleteBookByID(ctx context.Context, id string) (*driver.BookRecord, error)
}

// BookRepositoryGateway adapts the record store driver to the domain
// repository port.
type BookRepositoryGateway struct {
	driver BookDriver
}

func NewBookRepositoryGateway(driver BookDriver) *BookRepositoryGateway {
	return &BookRepositoryGateway{
		driver: driver,
	}
}

func (g *BookRepositoryGateway) Create(ctx context.Context, fields domain.BookFields) (*domain.Book, error) {
	record, err := g.driver.CreateBook(ctx, driver.BookFields{
		Title:         fields.Title,
		Author:        fields.Author,
		Category:      fields.Category,
		PublishedDate: fields.PublishedDate,
	})
	if err != nil {
		return nil, &domain.RepositoryError{
			Op:  "Create",
			Err: err.Error(),
		}
	}

	return g.convertToDomain(record)
}

func (g *BookRepositoryGateway) DeleteByID(ctx context.Context, id string) (*domain.Book, error) {
	record, err := g.driver.DeleteBookByID(ctx, id)
	if err != nil {
		// Not-found stays a distinct outcome through the layers.
		if errors.Is(err, driver.ErrRecordNotFound) {
			return nil, domain.ErrBookNotFound
		}
		return nil, &domain.RepositoryError{
			Op:  "DeleteByID",
			Err: err.Error(),
		}
	}

	return g.convertToDomain(record)
}

func (g *BookRepositoryGateway) convertToDomain(record *driver.BookRecord) (*domain.Book, error) {
	book, err := domain.NewBook(
		record.ID.Hex(),
		domain.BookFields{
			Title:         record.Title,
			Author:        record.Author,
			Category:      record.Category,
			PublishedDate: record.PublishedDate,
		},
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return nil, &domain.RepositoryError{
			Op:  "convertToDomain",
			Err: "failed to convert record to domain: " + err.Error(),
		}
	}
	return book, nil
}

package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all OTel metric instruments for book-catalog.
var Metrics *BookCatalogMetrics

// BookCatalogMetrics contains all metric instruments.
type BookCatalogMetrics struct {
	SearchesTotal     metric.Int64Counter
	BooksAddedTotal   metric.Int64Counter
	BooksDeletedTotal metric.Int64Counter
	ErrorsTotal       metric.Int64Counter
	SearchDuration    metric.Float64Histogram
}

// InitMetrics initializes all metric instruments.
func InitMetrics() error {
	meter := otel.Meter("book-catalog")

	searchesTotal, err := meter.Int64Counter("book_catalog_searches_total",
		metric.WithDescription("Total number of search requests served"),
	)
	if err != nil {
		return err
	}

	booksAddedTotal, err := meter.Int64Counter("book_catalog_books_added_total",
		metric.WithDescription("Total number of books added to the catalog"),
	)
	if err != nil {
		return err
	}

	booksDeletedTotal, err := meter.Int64Counter("book_catalog_books_deleted_total",
		metric.WithDescription("Total number of books deleted from the catalog"),
	)
	if err != nil {
		return err
	}

	errorsTotal, err := meter.Int64Counter("book_catalog_errors_total",
		metric.WithDescription("Total number of failed operations"),
	)
	if err != nil {
		return err
	}

	searchDuration, err := meter.Float64Histogram("book_catalog_search_duration_seconds",
		metric.WithDescription("Search request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	Metrics = &BookCatalogMetrics{
		SearchesTotal:     searchesTotal,
		BooksAddedTotal:   booksAddedTotal,
		BooksDeletedTotal: booksDeletedTotal,
		ErrorsTotal:       errorsTotal,
		SearchDuration:    searchDuration,
	}

	return nil
}

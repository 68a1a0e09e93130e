// Package rest exposes the catalog over HTTP: search, autocomplete, add and
// delete. Handlers translate transport concerns (binding, status codes) and
// delegate everything else to the usecases.
package rest

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"book-catalog/domain"
	"book-catalog/logger"
	"book-catalog/usecase"
	appOtel "book-catalog/utils/otel"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Handler contains all HTTP handlers for the book catalog.
type Handler struct {
	searchUsecase  *usecase.SearchBooksUsecase
	suggestUsecase *usecase.SuggestTitlesUsecase
	addUsecase     *usecase.AddBookUsecase
	deleteUsecase  *usecase.DeleteBookUsecase
}

func NewHandler(
	searchUsecase *usecase.SearchBooksUsecase,
	suggestUsecase *usecase.SuggestTitlesUsecase,
	addUsecase *usecase.AddBookUsecase,
	deleteUsecase *usecase.DeleteBookUsecase,
) *Handler {
	return &Handler{
		searchUsecase:  searchUsecase,
		suggestUsecase: suggestUsecase,
		addUsecase:     addUsecase,
		deleteUsecase:  deleteUsecase,
	}
}

type SearchRequest struct {
	Query    string `json:"query"`
	Category string `json:"category"`
	Author   string `json:"author"`
	Page     int    `json:"page"`
	Size     int    `json:"size"`
}

type SearchHitResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	Category      string     `json:"category"`
	PublishedDate *time.Time `json:"published_date"`
}

type AggregationsResponse struct {
	Authors map[string]int64 `json:"authors"`
	Years   map[string]int64 `json:"years"`
}

type SearchResponse struct {
	Total        int64                `json:"total"`
	Hits         []SearchHitResponse  `json:"hits"`
	Aggregations AggregationsResponse `json:"aggregations"`
}

type AddBookRequest struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	Category      string `json:"category"`
	PublishedDate string `json:"published_date"`
}

type BookResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	Category      string     `json:"category"`
	PublishedDate *time.Time `json:"published_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type DeleteBookResponse struct {
	Message string       `json:"message"`
	Book    BookResponse `json:"book"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// SearchBooks handles POST /api/search.
func (h *Handler) SearchBooks(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	ctx := logger.WithQuery(logger.WithOperation(c.Request().Context(), "SearchBooks"), req.Query)

	start := time.Now()
	page, err := h.searchUsecase.Execute(ctx, domain.SearchQuery{
		Text:     req.Query,
		Category: req.Category,
		Author:   req.Author,
		Page:     req.Page,
		Size:     req.Size,
	})
	if err != nil {
		logger.GlobalContext.LogError(ctx, "SearchBooks", err)
		recordError(c, "search")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Something went wrong"})
	}
	recordSearch(c, time.Since(start))

	resp := SearchResponse{
		Total: page.Total,
		Hits:  make([]SearchHitResponse, 0, len(page.Hits)),
		Aggregations: AggregationsResponse{
			Authors: page.Aggregations.Authors,
			Years:   page.Aggregations.Years,
		},
	}
	for _, hit := range page.Hits {
		resp.Hits = append(resp.Hits, SearchHitResponse{
			ID:            hit.ID,
			Title:         hit.Title,
			Author:        hit.Author,
			Category:      hit.Category,
			PublishedDate: hit.PublishedDate,
		})
	}

	logger.GlobalContext.WithContext(ctx).Info("search ok",
		"total", page.Total,
		"count", len(resp.Hits),
	)
	return c.JSON(http.StatusOK, resp)
}

// AutocompleteBooks handles GET /api/autocomplete.
func (h *Handler) AutocompleteBooks(c echo.Context) error {
	prefix := c.QueryParam("prefix")

	ctx := logger.WithOperation(c.Request().Context(), "AutocompleteBooks")

	suggestions, err := h.suggestUsecase.Execute(ctx, prefix)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyPrefix) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Prefix query missing"})
		}
		logger.GlobalContext.LogError(ctx, "AutocompleteBooks", err)
		recordError(c, "autocomplete")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Server error"})
	}

	return c.JSON(http.StatusOK, SuggestionsResponse{Suggestions: suggestions})
}

// AddBook handles POST /api/books.
func (h *Handler) AddBook(c echo.Context) error {
	var req AddBookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	publishedDate, err := parseDate(req.PublishedDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid published_date"})
	}

	ctx := logger.WithOperation(c.Request().Context(), "AddBook")

	book, err := h.addUsecase.Execute(ctx, domain.BookFields{
		Title:         req.Title,
		Author:        req.Author,
		Category:      req.Category,
		PublishedDate: publishedDate,
	})
	if err != nil {
		logger.GlobalContext.LogError(ctx, "AddBook", err)
		recordError(c, "add")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to add book"})
	}

	logger.GlobalContext.WithContext(ctx).Info("book added", "book_id", book.ID())
	recordAdd(c)
	return c.JSON(http.StatusCreated, toBookResponse(book))
}

// DeleteBook handles DELETE /api/books/:id.
func (h *Handler) DeleteBook(c echo.Context) error {
	id := c.Param("id")

	ctx := logger.WithBookID(logger.WithOperation(c.Request().Context(), "DeleteBook"), id)

	book, err := h.deleteUsecase.Execute(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Book not found"})
		}
		logger.GlobalContext.LogError(ctx, "DeleteBook", err)
		recordError(c, "delete")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete book"})
	}

	logger.GlobalContext.WithContext(ctx).Info("book deleted")
	recordDelete(c)
	return c.JSON(http.StatusOK, DeleteBookResponse{
		Message: "Book deleted",
		Book:    toBookResponse(book),
	})
}

func toBookResponse(book *domain.Book) BookResponse {
	return BookResponse{
		ID:            book.ID(),
		Title:         book.Title(),
		Author:        book.Author(),
		Category:      book.Category(),
		PublishedDate: book.PublishedDate(),
		CreatedAt:     book.CreatedAt(),
		UpdatedAt:     book.UpdatedAt(),
	}
}

// parseDate accepts an empty value, a calendar date or a full RFC 3339
// timestamp.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("unsupported date format: %q", value)
}

func recordSearch(c echo.Context, duration time.Duration) {
	m := appOtel.Metrics
	if m == nil {
		return
	}
	ctx := c.Request().Context()
	m.SearchesTotal.Add(ctx, 1)
	m.SearchDuration.Record(ctx, duration.Seconds())
}

func recordAdd(c echo.Context) {
	if m := appOtel.Metrics; m != nil {
		m.BooksAddedTotal.Add(c.Request().Context(), 1)
	}
}

func recordDelete(c echo.Context) {
	if m := appOtel.Metrics; m != nil {
		m.BooksDeletedTotal.Add(c.Request().Context(), 1)
	}
}

func recordError(c echo.Context, operation string) {
	if m := appOtel.Metrics; m != nil {
		m.ErrorsTotal.Add(c.Request().Context(), 1,
			metric.WithAttributes(attribute.String("operation", operation)))
	}
}

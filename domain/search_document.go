package domain

import "time"

// SearchDocument is the denormalized projection of a Book kept in the search
// index, keyed by the same identifier.
type SearchDocument struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	Category      string     `json:"category"`
	PublishedDate *time.Time `json:"published_date,omitempty"`
}

func NewSearchDocument(book *Book) SearchDocument {
	return SearchDocument{
		ID:            book.ID(),
		Title:         book.Title(),
		Author:        book.Author(),
		Category:      book.Category(),
		PublishedDate: book.PublishedDate(),
	}
}

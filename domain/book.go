package domain

import (
	"errors"
	"time"
)

// Known category values. The set is advisory: unknown values are stored and
// matched verbatim, they just never hit anything in the index.
var KnownCategories = []string{"fiction", "non-fiction", "biography", "science"}

// Book is a catalog record. The id is assigned by the record store on
// creation and is the join key with the search index document.
type Book struct {
	id            string
	title         string
	author        string
	category      string
	publishedDate *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// BookFields carries the caller-supplied attributes of a record before the
// store has assigned an id. Every field is optional.
type BookFields struct {
	Title         string
	Author        string
	Category      string
	PublishedDate *time.Time
}

func NewBook(id string, fields BookFields, createdAt, updatedAt time.Time) (*Book, error) {
	if id == "" {
		return nil, errors.New("book ID cannot be empty")
	}

	return &Book{
		id:            id,
		title:         fields.Title,
		author:        fields.Author,
		category:      fields.Category,
		publishedDate: fields.PublishedDate,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (b *Book) ID() string {
	return b.id
}

func (b *Book) Title() string {
	return b.title
}

func (b *Book) Author() string {
	return b.author
}

func (b *Book) Category() string {
	return b.category
}

func (b *Book) PublishedDate() *time.Time {
	return b.publishedDate
}

func (b *Book) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Book) UpdatedAt() time.Time {
	return b.updatedAt
}

func (b *Book) Fields() BookFields {
	return BookFields{
		Title:         b.title,
		Author:        b.author,
		Category:      b.category,
		PublishedDate: b.publishedDate,
	}
}

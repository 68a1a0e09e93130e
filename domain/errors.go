package domain

import "errors"

// ErrBookNotFound signals that no record exists for the requested id. It is
// distinct from store failures so callers can report 404 instead of 500.
var ErrBookNotFound = errors.New("book not found")

// ErrEmptyPrefix signals a missing autocomplete prefix. Reported to the
// caller before any side effect is attempted.
var ErrEmptyPrefix = errors.New("suggestion prefix cannot be empty")

// RepositoryError represents an error from the record store layer.
type RepositoryError struct {
	Op  string
	Err string
}

func (e *RepositoryError) Error() string {
	return e.Op + ": " + e.Err
}

// SearchEngineError represents an error from the search engine layer.
type SearchEngineError struct {
	Op  string
	Err string
}

func (e *SearchEngineError) Error() string {
	return e.Op + ": " + e.Err
}

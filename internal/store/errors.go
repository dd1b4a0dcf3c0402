package store

import "errors"

// Sentinel errors the API layer maps to status codes with errors.Is.
// Anything else coming out of the store is an unexpected storage failure.
var (
	// ErrValidation indicates missing or empty required input.
	ErrValidation = errors.New("validation failed")

	// ErrConflict indicates a uniqueness violation on a primary key.
	ErrConflict = errors.New("already exists")

	// ErrNotFound indicates the operation targets a nonexistent row.
	ErrNotFound = errors.New("not found")
)

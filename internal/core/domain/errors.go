package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidRoot indicates the search root is missing or not a
	// directory. It is the only error that aborts a whole query; all
	// per-entry failures during traversal are absorbed.
	ErrInvalidRoot = errors.New("directory does not exist")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)

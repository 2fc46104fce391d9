package library

import "errors"

var (
	// ErrInvalidQuery is returned for an unknown preset or sort key.
	ErrInvalidQuery = errors.New("invalid library query")

	// ErrInvalidEdit is returned when a bulk edit would change nothing or
	// names no items.
	ErrInvalidEdit = errors.New("invalid bulk edit")
)

package core

import "errors"

// Common errors.
var (
	// ErrNotFound is returned by a Gateway when no blob has been written yet.
	// The service treats it like any other load failure: seed a default store.
	ErrNotFound = errors.New("store blob not found")

	// ErrInvalidImport rejects an import payload that is not a well-formed
	// store blob. The current store is left untouched.
	ErrInvalidImport = errors.New("invalid import payload")
)

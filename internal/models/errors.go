package models

import "errors"

// Domain-specific errors for catalog and widget plumbing
var (
	// ErrUnknownField indicates a facet field the catalog does not index
	ErrUnknownField = errors.New("unknown facet field")

	// ErrInvalidOption indicates an option or filter value that could not be parsed
	ErrInvalidOption = errors.New("invalid facet option")
)

package similarity

import "errors"

var (
	// ErrCatalogRequired is returned when an engine is built without a catalog.
	ErrCatalogRequired = errors.New("catalog required")

	// ErrInvalidK is returned when a neighbor or cluster count is out of range.
	ErrInvalidK = errors.New("invalid k")
)

package catalog

import "errors"

var (
	// ErrEmptyCatalog is returned when a catalog is built without phonemes.
	ErrEmptyCatalog = errors.New("catalog has no phonemes")

	// ErrUnknownFeature is returned when a constraint names an unknown feature.
	ErrUnknownFeature = errors.New("unknown feature name")
)

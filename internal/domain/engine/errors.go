package engine

import "errors"

var (
	// ErrEmptyCatalog is returned when the engine is built with no scorable
	// heroes. It signals a configuration problem, not an empty result.
	ErrEmptyCatalog = errors.New("hero catalog is empty")
	// ErrUnknownHero is returned by lookups for a hero not in the catalog.
	ErrUnknownHero = errors.New("unknown hero")
)

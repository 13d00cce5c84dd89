package catalog

import "errors"

// Sentinel kinds for catalog construction.
var (
	ErrDuplicateHero = errors.New("duplicate hero name")
)

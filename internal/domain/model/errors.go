package model

import "errors"

// Sentinel kinds for hero record validation.
var (
	ErrEmptyName            = errors.New("hero name is empty")
	ErrIncompleteAttributes = errors.New("incomplete attribute bundle")
	ErrRatingOutOfRange     = errors.New("rating out of range")
	ErrUnknownLane          = errors.New("unknown lane")
	ErrDuplicateLane        = errors.New("duplicate lane in affinity list")
	ErrUnknownRole          = errors.New("unknown role")
)

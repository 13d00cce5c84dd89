package repository

import "errors"

// Sentinel kinds for repository errors.
var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrUnsupportedSource = errors.New("unsupported hero source")
	ErrReadSource        = errors.New("read hero source")
)

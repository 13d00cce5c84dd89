package service

import (
	"errors"
	"fmt"

	"github.com/okian/draftsensei/internal/domain/types"
)

var (
	// ErrNotStarted is returned by operations called before Start or after Stop.
	ErrNotStarted = errors.New("service not started")
	// ErrLaneRequired is returned by Pick when the request has no lane.
	ErrLaneRequired = fmt.Errorf("lane is required: %w", types.ErrInvalidRequest)
)

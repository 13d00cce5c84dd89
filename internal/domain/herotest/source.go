package herotest

import (
	"context"
	"sync"

	"github.com/okian/draftsensei/internal/domain/model"
)

// Source is an in-memory hero source.
type Source struct {
	mu      sync.Mutex
	records []model.HeroRecord
	err     error
	closed  bool
}

// NewSource serves the records of heroes.
func NewSource(heroes ...*model.Hero) *Source {
	return &Source{records: Records(heroes...)}
}

// Heroes returns a copy of the current records, or the error set with Fail.
func (s *Source) Heroes(ctx context.Context) ([]model.HeroRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return append([]model.HeroRecord(nil), s.records...), nil
}

// Set replaces the served records.
func (s *Source) Set(heroes ...*model.Hero) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = Records(heroes...)
}

// Fail makes later reads return err. A nil err restores normal reads.
func (s *Source) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *Source) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

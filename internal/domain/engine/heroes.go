package engine

import (
	"fmt"

	"github.com/okian/draftsensei/internal/domain/model"
	"github.com/okian/draftsensei/internal/domain/registry"
)

// Hero returns one catalog hero.
func (e *Engine) Hero(name string) (*model.Hero, error) {
	h, ok := e.catalog.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownHero)
	}
	return h, nil
}

// Heroes lists catalog heroes, optionally filtered by role and lane.
func (e *Engine) Heroes(role model.Role, l model.Lane) []*model.Hero {
	return e.catalog.Filter(role, l)
}

// CountersTo returns the n catalog heroes that best counter name.
func (e *Engine) CountersTo(name string, n int) ([]registry.Pair, error) {
	h, err := e.Hero(name)
	if err != nil {
		return nil, err
	}
	var pool []string
	for _, c := range e.catalog.Names() {
		if c != h.Name {
			pool = append(pool, c)
		}
	}
	return e.registry.BestCounters([]string{h.Name}, pool, n), nil
}

// PartnersFor returns the n catalog heroes with the best synergy with name.
func (e *Engine) PartnersFor(name string, n int) ([]registry.Pair, error) {
	h, err := e.Hero(name)
	if err != nil {
		return nil, err
	}
	return e.registry.BestPartners(h.Name, e.catalog.Names(), n), nil
}

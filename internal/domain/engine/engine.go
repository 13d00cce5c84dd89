// Package engine exposes the recommendation entry points: next pick for an
// explicit lane, next pick with the lane chosen automatically, ban
// suggestions, and draft analysis.
package engine

import (
	"context"
	"fmt"

	"github.com/okian/draftsensei/internal/domain/catalog"
	"github.com/okian/draftsensei/internal/domain/diversity"
	"github.com/okian/draftsensei/internal/domain/lane"
	"github.com/okian/draftsensei/internal/domain/model"
	"github.com/okian/draftsensei/internal/domain/ranking"
	"github.com/okian/draftsensei/internal/domain/registry"
	"github.com/okian/draftsensei/internal/domain/scoring"
	"github.com/okian/draftsensei/internal/domain/tuning"
	"github.com/okian/draftsensei/internal/domain/weighting"
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithTuning replaces the default heuristic table.
func WithTuning(t tuning.Tuning) Option {
	return func(e *Engine) {
		e.tuning = t
	}
}

// WithRegistry sets the synergy and counter tables. The seeded registry is
// used when no option is given.
func WithRegistry(r *registry.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// Engine is stateless between calls: the diversity state goes in and comes
// back out explicitly. It is safe for concurrent use.
type Engine struct {
	catalog  *catalog.Catalog
	registry *registry.Registry
	tuning   tuning.Tuning

	scorer   *scoring.Scorer
	adjuster *weighting.Adjuster
	selector *lane.Selector
	ranker   *ranking.Ranker
}

// New builds an engine over c. A catalog without heroes is ErrEmptyCatalog.
func New(c *catalog.Catalog, opts ...Option) (*Engine, error) {
	if c == nil || c.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	e := &Engine{
		catalog: c,
		tuning:  tuning.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = registry.New()
	}

	e.scorer = scoring.New(scoring.WithTuning(e.tuning), scoring.WithRegistry(e.registry))
	e.adjuster = weighting.New(e.tuning.Weighting)
	e.selector = lane.New(e.tuning.Lane)
	e.ranker = ranking.New(e.scorer)
	return e, nil
}

// Catalog returns the catalog the engine scores from.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Registry returns the synergy and counter tables in use.
func (e *Engine) Registry() *registry.Registry { return e.registry }

// Tuning returns the heuristic table in use.
func (e *Engine) Tuning() tuning.Tuning { return e.tuning }

// Recommendation is the answer to a next pick request.
type Recommendation struct {
	Lane        model.Lane           `json:"lane_code"`
	LaneLabel   string               `json:"recommended_lane"`
	Reasoning   string               `json:"reasoning"`
	Weights     model.Weights        `json:"weights"`
	Adjustments []string             `json:"weight_adjustments"`
	Candidates  int                  `json:"candidates_scored"`
	Suggestions []ranking.Suggestion `json:"suggestions"`
}

// resolved is a draft state with its picks looked up in the catalog.
type resolved struct {
	state   model.DraftState
	enemies []*model.Hero
	allies  []*model.Hero
}

func (e *Engine) resolve(state model.DraftState) resolved {
	return resolved{
		state:   state,
		enemies: e.catalog.Resolve(state.EnemyPicks),
		allies:  e.catalog.Resolve(state.AllyPicks),
	}
}

// available returns the catalog heroes not banned or picked by either side.
func (e *Engine) available(state model.DraftState) []*model.Hero {
	taken := make(map[*model.Hero]struct{})
	for _, list := range [][]string{state.Bans, state.EnemyPicks, state.AllyPicks} {
		for _, h := range e.catalog.Resolve(list) {
			taken[h] = struct{}{}
		}
	}
	var out []*model.Hero
	for _, h := range e.catalog.Heroes() {
		if _, ok := taken[h]; !ok {
			out = append(out, h)
		}
	}
	return out
}

// Recommend ranks the available heroes for an explicit lane.
func (e *Engine) Recommend(ctx context.Context, state model.DraftState, l model.Lane, div diversity.State) (Recommendation, diversity.State, error) {
	if err := ctx.Err(); err != nil {
		return Recommendation{}, div, err
	}
	if !l.Valid() {
		return Recommendation{}, div, fmt.Errorf("lane %q: %w", l, model.ErrUnknownLane)
	}
	r := e.resolve(state)
	rec, next := e.rank(r, l, div)
	rec.Reasoning = fmt.Sprintf("Requested pick for %s", l.Label())
	return rec, next, nil
}

// RecommendAuto chooses the lane with the lane selector, then ranks for it.
func (e *Engine) RecommendAuto(ctx context.Context, state model.DraftState, div diversity.State) (Recommendation, diversity.State, error) {
	if err := ctx.Err(); err != nil {
		return Recommendation{}, div, err
	}
	r := e.resolve(state)
	choice := e.selector.Select(e.laneDraft(r))
	rec, next := e.rank(r, choice.Lane, div)
	rec.Reasoning = choice.Reasoning
	return rec, next, nil
}

// SelectLane runs only the lane selector.
func (e *Engine) SelectLane(state model.DraftState) lane.Choice {
	return e.selector.Select(e.laneDraft(e.resolve(state)))
}

func (e *Engine) laneDraft(r resolved) lane.Draft {
	d := lane.Draft{
		TotalPicks: r.state.TotalPicks(),
		AllyPicks:  len(r.state.AllyPicks),
		Enemies:    r.enemies,
		Allies:     r.allies,
	}
	if len(r.state.EnemyPicks) > 0 {
		if h, ok := e.catalog.Lookup(r.state.EnemyPicks[0]); ok {
			d.FirstEnemy = h
		}
	}
	return d
}

func (e *Engine) rank(r resolved, l model.Lane, div diversity.State) (Recommendation, diversity.State) {
	weights, adjustments := e.adjuster.Adjust(weighting.SignalsFor(r.state, l, r.allies))
	rec := Recommendation{
		Lane:        l,
		LaneLabel:   l.Label(),
		Weights:     weights,
		Adjustments: adjustments,
		Suggestions: []ranking.Suggestion{},
	}

	pool := e.available(r.state)
	if len(pool) == 0 {
		return rec, div
	}
	sc := scoring.Context{Enemies: r.enemies, Allies: r.allies, Lane: l, AllyPicks: len(r.state.AllyPicks)}
	cands := make([]ranking.Candidate, len(pool))
	for i, h := range pool {
		cands[i] = ranking.Candidate{Hero: h, Breakdown: e.scorer.Evaluate(h, sc)}
	}
	rec.Candidates = len(cands)
	rec.Suggestions, div = e.ranker.Rank(cands, weights, div)
	return rec, div
}

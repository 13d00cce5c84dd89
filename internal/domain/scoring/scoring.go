// Package scoring evaluates a candidate hero against the current draft along
// five independent factors, each bounded to [0, 100] with justification text.
package scoring

import (
	"fmt"
	"math"

	"github.com/okian/draftsensei/internal/domain/model"
	"github.com/okian/draftsensei/internal/domain/registry"
	"github.com/okian/draftsensei/internal/domain/tuning"
)

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithTuning replaces the heuristic table.
func WithTuning(t tuning.Tuning) Option {
	return func(s *Scorer) {
		s.tuning = t
	}
}

// WithRegistry sets the tabulated synergy and counter edges.
func WithRegistry(r *registry.Registry) Option {
	return func(s *Scorer) {
		if r != nil {
			s.registry = r
		}
	}
}

// Result is one factor's score and the reasons it produced.
type Result struct {
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons,omitempty"`
}

// Context is the draft as seen by a single candidate. Heroes missing from the
// catalog are expected to be dropped before scoring.
type Context struct {
	Enemies []*model.Hero
	Allies  []*model.Hero
	Lane    model.Lane
	// AllyPicks is the raw number of ally picks, unknown names included.
	// Zero means len(Allies).
	AllyPicks int
}

func (c Context) allyPicks() int {
	return max(c.AllyPicks, len(c.Allies))
}

// Breakdown holds all five factor results for one candidate.
type Breakdown struct {
	Counter     Result `json:"counter"`
	Synergy     Result `json:"synergy"`
	Composition Result `json:"team_composition"`
	Priority    Result `json:"pick_priority"`
	RoleFit     Result `json:"role_fit"`
}

// Scorer implements the five scoring functions. It holds no mutable state.
type Scorer struct {
	tuning   tuning.Tuning
	registry *registry.Registry
}

// New constructs a Scorer with the default tuning and an empty registry.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		tuning:   tuning.Default(),
		registry: registry.Empty(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tuning returns the table in use.
func (s *Scorer) Tuning() tuning.Tuning { return s.tuning }

// Evaluate runs every factor for hero h.
func (s *Scorer) Evaluate(h *model.Hero, c Context) Breakdown {
	return Breakdown{
		Counter:     s.Counter(h, c.Enemies),
		Synergy:     s.Synergy(h, c.Allies),
		Composition: s.Composition(h, c.Allies, c.allyPicks()),
		Priority:    s.Priority(h),
		RoleFit:     s.LaneFit(h, c.Lane),
	}
}

// Weighted combines the factor scores, clamped to [0, 100].
func (b Breakdown) Weighted(w model.Weights) float64 {
	total := b.Counter.Score*w.Counter +
		b.Synergy.Score*w.Synergy +
		b.Composition.Score*w.Composition +
		b.Priority.Score*w.Priority +
		b.RoleFit.Score*w.RoleFit
	return clamp(total, maxScore)
}

// Reasons merges the factor reasons in factor order, prefixes a top tier note
// when score is high enough, and keeps at most the configured number.
func (s *Scorer) Reasons(b Breakdown, score float64) []string {
	out := make([]string, 0, s.tuning.Reasons.Max+1)
	if score > s.tuning.Reasons.TopTier {
		out = append(out, fmt.Sprintf("Top tier pick (Score: %.1f)", score))
	}
	for _, r := range []Result{b.Counter, b.Synergy, b.Composition, b.Priority, b.RoleFit} {
		out = append(out, r.Reasons...)
	}
	if limit := s.tuning.Reasons.Max; limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

const maxScore = 100

func clamp(v, hi float64) float64 {
	return math.Max(0, math.Min(v, hi))
}

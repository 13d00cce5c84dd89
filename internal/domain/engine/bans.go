package engine

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/okian/draftsensei/internal/domain/model"
	"github.com/okian/draftsensei/internal/domain/registry"
)

// BanSuggestion is a hero worth denying with the threat it poses.
type BanSuggestion struct {
	Hero    string     `json:"hero"`
	Score   float64    `json:"score"`
	Role    model.Role `json:"role"`
	Reasons []string   `json:"reasons"`
}

// SuggestBans ranks the available heroes by the threat they pose to the
// ally picks. Heroes with no positive threat are left out.
func (e *Engine) SuggestBans(ctx context.Context, state model.DraftState) ([]BanSuggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t := e.tuning.Bans
	allies := e.catalog.Resolve(state.AllyPicks)

	out := []BanSuggestion{}
	for _, h := range e.available(state) {
		var threat float64
		var reasons []string
		for _, a := range allies {
			edge := e.registry.Counter(h.Name, a.Name)
			threat += math.Max(0, edge-registry.DefaultCounter) * t.EdgeWeight
			if edge >= t.HardCounterEdge {
				reasons = append(reasons, fmt.Sprintf("Hard counters %s", a.Name))
			}
		}

		priority := e.scorer.Priority(h)
		threat += (priority.Score - 50) * t.PriorityWeight
		reasons = append(reasons, priority.Reasons...)

		threat += (e.scorer.Counter(h, allies).Score - e.tuning.NeutralScore) * t.HeuristicWeight

		if threat <= 0 {
			continue
		}
		out = append(out, BanSuggestion{
			Hero:    h.Name,
			Score:   math.Round(math.Min(threat, e.tuning.MaxScore)*100) / 100,
			Role:    h.PrimaryRole(),
			Reasons: reasons,
		})
	}

	slices.SortStableFunc(out, func(a, b BanSuggestion) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Hero, b.Hero)
	})
	if n := e.tuning.ResultSize; n > 0 && len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// Package weighting shifts the emphasis between scoring factors as a draft
// progresses.
package weighting

import (
	"fmt"
	"strings"

	"github.com/okian/draftsensei/internal/domain/model"
	"github.com/okian/draftsensei/internal/domain/tuning"
)

// Signals are the draft facts the adjustments look at. Counts come from the
// raw draft lists; Allies holds only heroes found in the catalog.
type Signals struct {
	TotalPicks int
	EnemyPicks int
	Bans       int
	Lane       model.Lane
	Allies     []*model.Hero
}

// SignalsFor derives Signals from a draft state and its resolved allies.
func SignalsFor(state model.DraftState, lane model.Lane, allies []*model.Hero) Signals {
	return Signals{
		TotalPicks: state.TotalPicks(),
		EnemyPicks: len(state.EnemyPicks),
		Bans:       len(state.Bans),
		Lane:       lane,
		Allies:     allies,
	}
}

// Adjuster computes normalized weights from Signals.
type Adjuster struct {
	t tuning.Weighting
}

// New returns an Adjuster over the given table.
func New(t tuning.Weighting) *Adjuster {
	return &Adjuster{t: t}
}

// Adjust applies every triggered adjustment in order, then clamps and
// renormalizes. The second result names the adjustments applied.
func (a *Adjuster) Adjust(s Signals) (model.Weights, []string) {
	w := a.t.Base
	var applied []string
	apply := func(cond string, delta model.Weights) {
		w = w.Add(delta)
		applied = append(applied, describe(cond, delta))
	}

	if s.TotalPicks >= a.t.LateDraftPicks {
		apply(fmt.Sprintf("total_picks>=%d", a.t.LateDraftPicks), a.t.LateDraft)
	}
	if s.EnemyPicks >= a.t.EnemyPatternPicks {
		apply(fmt.Sprintf("enemy_picks>=%d", a.t.EnemyPatternPicks), a.t.EnemyPattern)
	}
	if s.Lane != "" && MissingLane(s.Allies, s.Lane) {
		apply("missing "+string(s.Lane), a.t.MissingLane)
	}
	if s.Bans >= a.t.BanPressureBans {
		apply(fmt.Sprintf("bans>=%d", a.t.BanPressureBans), a.t.BanPressure)
	}
	if hero, ok := a.winCondition(s.Allies); ok {
		apply("win condition "+hero, a.t.WinCondition)
	}
	return w.Normalize(), applied
}

// MissingLanes returns the lanes no ally occupies as its primary lane, in
// canonical order.
func MissingLanes(allies []*model.Hero) []model.Lane {
	filled := make(map[model.Lane]bool, len(allies))
	for _, h := range allies {
		if l, ok := h.PrimaryLane(); ok {
			filled[l] = true
		}
	}
	var out []model.Lane
	for _, l := range model.Lanes() {
		if !filled[l] {
			out = append(out, l)
		}
	}
	return out
}

// MissingLane reports whether no ally holds lane as its primary lane.
func MissingLane(allies []*model.Hero, lane model.Lane) bool {
	for _, l := range MissingLanes(allies) {
		if l == lane {
			return true
		}
	}
	return false
}

// winCondition returns the first ally combining high dps with late game
// power or scaling.
func (a *Adjuster) winCondition(allies []*model.Hero) (string, bool) {
	for _, h := range allies {
		attr := h.Attributes
		if attr.Combat.DPS < a.t.WinConditionDPS {
			continue
		}
		if attr.PowerCurve.LateGame >= a.t.WinConditionPower || attr.PowerCurve.Scaling >= a.t.WinConditionPower {
			return h.Name, true
		}
	}
	return "", false
}

func describe(cond string, delta model.Weights) string {
	var b strings.Builder
	b.WriteString(cond)
	b.WriteString(":")
	for _, f := range []model.Factor{
		model.FactorCounter, model.FactorSynergy, model.FactorComposition,
		model.FactorPriority, model.FactorRoleFit,
	} {
		switch v := delta.Get(f); {
		case v > 0:
			fmt.Fprintf(&b, " +%s", f)
		case v < 0:
			fmt.Fprintf(&b, " -%s", f)
		}
	}
	return b.String()
}

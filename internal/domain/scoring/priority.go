package scoring

import (
	"github.com/okian/draftsensei/internal/domain/model"
)

// Priority scores the hero's standalone strength from its own ratings.
func (s *Scorer) Priority(h *model.Hero) Result {
	t := s.tuning.Priority
	a := h.Attributes

	combat := float64(a.Combat.BurstDamage+a.Combat.SustainedDamage+a.Combat.DPS+a.Combat.AOEDamage) / 4
	survival := float64(a.Survivability.Tankiness+a.Survivability.Mobility+a.Survivability.Escape) / 3
	power := float64(a.PowerCurve.EarlyGame)*t.EarlyGame +
		float64(a.PowerCurve.MidGame)*t.MidGame +
		float64(a.PowerCurve.LateGame)*t.LateGame +
		float64(a.PowerCurve.Scaling)*t.Scaling
	cc := float64(a.Utility.CrowdControl)

	score := (combat*t.CombatWeight + survival*t.SurvivabilityWeight + power*t.PowerWeight + cc*t.CCWeight) * t.Scale

	perfect := 0
	for _, v := range []int{
		a.Combat.BurstDamage, a.Combat.SustainedDamage, a.Combat.DPS, a.Combat.AOEDamage,
		a.Survivability.Tankiness, a.Survivability.Mobility, a.Survivability.Escape,
	} {
		if v == model.MaxRating {
			perfect++
		}
	}
	for _, tier := range t.PerfectPenalties {
		if perfect >= tier.Min {
			score *= tier.Multiplier
			break
		}
	}

	score = clamp(score, s.tuning.MaxScore)
	var reasons []string
	if score > s.tuning.Reasons.Priority {
		reasons = append(reasons, "High meta strength hero")
	}
	return Result{Score: score, Reasons: reasons}
}

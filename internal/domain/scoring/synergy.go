package scoring

import (
	"fmt"
	"math"

	"github.com/okian/draftsensei/internal/domain/model"
	"github.com/okian/draftsensei/internal/domain/tuning"
)

// Synergy scores how well h fits with the ally picks. Without allies the
// score is neutral.
func (s *Scorer) Synergy(h *model.Hero, allies []*model.Hero) Result {
	t := s.tuning.Synergy
	if len(allies) == 0 {
		return Result{Score: s.tuning.NeutralScore}
	}

	var total float64
	var edges []string
	for _, a := range allies {
		pts := synergyPoints(t, h.Attributes, a.Attributes)
		if edge, ok := s.registry.LookupSynergy(h.Name, a.Name); ok {
			pts = math.Max(pts, edge)
			if edge >= t.StrongPartnerEdge {
				edges = append(edges, fmt.Sprintf("Strong synergy with %s", a.Name))
			}
		}
		total += math.Min(pts, t.PerAllyCap)
	}

	score := clamp(total/float64(len(allies)), s.tuning.MaxScore)
	var reasons []string
	if score > s.tuning.Reasons.Synergy {
		reasons = append(reasons, fmt.Sprintf("Excellent synergy with allies (%.0f/100)", score))
	}
	return Result{Score: score, Reasons: append(reasons, edges...)}
}

func synergyPoints(t tuning.Synergy, own, ally model.Attributes) float64 {
	var pts float64
	award := func(rule tuning.PairRule, ownRating int, partnerOK bool) {
		if ownRating >= rule.Own && partnerOK {
			pts += rule.Bonus
		}
	}
	award(t.TankForCarry, own.Survivability.Tankiness, ally.Combat.DPS >= t.TankForCarry.Partner)
	award(t.EngageForAOE, own.RangePlaystyle.Engage, ally.Combat.AOEDamage >= t.EngageForAOE.Partner)
	award(t.CCForBurst, own.Utility.CrowdControl, ally.Combat.BurstDamage >= t.CCForBurst.Partner)
	award(t.PeelForSquishy, own.RangePlaystyle.Peel, ally.Survivability.Tankiness <= t.PeelForSquishy.Partner)
	award(t.SustainForDamage, max(own.Utility.TeamHeal, own.Utility.TeamBuff), ally.Combat.SustainedDamage >= t.SustainForDamage.Partner)
	award(t.DoubleEngage, own.RangePlaystyle.Engage, ally.RangePlaystyle.Engage >= t.DoubleEngage.Partner)
	award(t.SharedMobility, own.Survivability.Mobility, ally.Survivability.Mobility >= t.SharedMobility.Partner)
	return pts
}

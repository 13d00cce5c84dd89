package scoring

import (
	"fmt"
	"math"

	"github.com/okian/draftsensei/internal/domain/model"
	"github.com/okian/draftsensei/internal/domain/tuning"
)

// Counter scores how well h answers the enemy picks. Without enemies the
// score is neutral.
func (s *Scorer) Counter(h *model.Hero, enemies []*model.Hero) Result {
	t := s.tuning.Counter
	if len(enemies) == 0 {
		return Result{Score: s.tuning.NeutralScore}
	}

	var total float64
	var edges []string
	for _, e := range enemies {
		pts := counterPoints(t, h.Attributes, e.Attributes)
		if edge, ok := s.registry.LookupCounter(h.Name, e.Name); ok {
			pts = math.Max(pts, edge)
			switch {
			case edge >= t.HardCounterEdge:
				edges = append(edges, fmt.Sprintf("Hard counters %s (%.0f)", e.Name, edge))
			case edge >= t.CounterEdge:
				edges = append(edges, fmt.Sprintf("Counters %s", e.Name))
			}
		}
		if edge, ok := s.registry.LookupCounter(e.Name, h.Name); ok && edge >= t.CounteredByEdge {
			edges = append(edges, fmt.Sprintf("Countered by %s", e.Name))
		}
		total += math.Min(pts, t.PerEnemyCap)
	}

	score := clamp(total/float64(len(enemies)), s.tuning.MaxScore)
	var reasons []string
	if score > s.tuning.Reasons.Counter {
		reasons = append(reasons, fmt.Sprintf("Strong counter against enemy team (%.0f/100)", score))
	}
	return Result{Score: score, Reasons: append(reasons, edges...)}
}

func counterPoints(t tuning.Counter, own, enemy model.Attributes) float64 {
	var pts float64
	if enemy.Survivability.Tankiness <= t.SquishyTankiness {
		pts += tuning.Pay(own.Combat.AntiSquishy, t.AntiSquishy)
	}
	if enemy.Survivability.Tankiness >= t.ToughTankiness {
		pts += tuning.Pay(own.Combat.AntiTank, t.AntiTank)
	}

	slippery := max(own.Survivability.Mobility, own.Survivability.Escape)
	switch {
	case enemy.Utility.CrowdControl >= t.HeavyCC && slippery >= t.HeavyCCEscape:
		pts += t.HeavyCCBonus
	case enemy.Utility.CrowdControl >= t.MediumCC && slippery >= t.MediumCCEscape:
		pts += t.MediumCCBonus
	}

	if enemy.RangePlaystyle.Range <= t.ShortRange {
		pts += tuning.Pay(own.Combat.Poke, t.Poke)
	}
	if enemy.Survivability.Mobility <= t.LowMobility {
		pts += tuning.Pay(own.RangePlaystyle.Engage, t.Engage)
	}
	if enemy.Survivability.Shields+enemy.Survivability.Regen <= t.LowDefense {
		pts += tuning.Pay(own.Combat.BurstDamage, t.Burst)
	}
	return pts
}

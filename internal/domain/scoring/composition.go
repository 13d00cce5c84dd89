package scoring

import (
	"slices"

	"github.com/okian/draftsensei/internal/domain/model"
	"github.com/okian/draftsensei/internal/domain/tuning"
)

// teamTotals sums the ally ratings the composition gaps look at.
type teamTotals struct {
	tankiness, magic, physical, cc, engage, waveclear, peel, sustained int
}

func sumTeam(allies []*model.Hero) teamTotals {
	var t teamTotals
	for _, a := range allies {
		attr := a.Attributes
		t.tankiness += attr.Survivability.Tankiness
		t.cc += attr.Utility.CrowdControl
		t.engage += attr.RangePlaystyle.Engage
		t.waveclear += attr.RangePlaystyle.Waveclear
		t.peel += attr.RangePlaystyle.Peel
		t.sustained += attr.Combat.SustainedDamage
		if a.PrimaryRole() == model.RoleMage {
			t.magic += attr.Combat.DPS
		} else {
			t.physical += attr.Combat.DPS
		}
	}
	return t
}

// Composition scores the share of open team gaps that h fills. With no gaps
// at all the score is neutral. allyPicks is the raw pick count and gates the
// frontline gap; unknown picks add nothing to the team totals.
func (s *Scorer) Composition(h *model.Hero, allies []*model.Hero, allyPicks int) Result {
	t := s.tuning.Composition
	team := sumTeam(allies)
	own := h.Attributes
	role := h.PrimaryRole()

	var open, filled float64
	check := func(g tuning.Gap, total int, fills bool) {
		if total >= g.Floor {
			return
		}
		open += g.Weight
		if fills {
			filled += g.Weight
		}
	}

	if allyPicks >= t.FrontlineMinAllies {
		check(t.Tankiness, team.tankiness, own.Survivability.Tankiness >= t.Tankiness.Fill)
	}
	check(t.MagicDamage, team.magic, role == model.RoleMage)
	check(t.PhysicalDamage, team.physical, slices.Contains(t.PhysicalRoles, role))
	check(t.CrowdControl, team.cc, own.Utility.CrowdControl >= t.CrowdControl.Fill)
	check(t.Engage, team.engage, own.RangePlaystyle.Engage >= t.Engage.Fill)
	check(t.Waveclear, team.waveclear, own.RangePlaystyle.Waveclear >= t.Waveclear.Fill)
	if team.sustained >= t.PeelTrigger {
		check(t.Peel, team.peel, own.RangePlaystyle.Peel >= t.Peel.Fill)
	}

	same := 0
	for _, a := range allies {
		if a.PrimaryRole() == role {
			same++
		}
	}
	if same >= t.RoleStackCount {
		filled -= t.RoleStackPenalty
	}

	if open == 0 {
		return Result{Score: s.tuning.NeutralScore}
	}
	score := clamp(filled/open*100, s.tuning.MaxScore)
	var reasons []string
	if score > s.tuning.Reasons.Composition {
		reasons = append(reasons, "Fills critical team composition gap")
	}
	return Result{Score: score, Reasons: reasons}
}

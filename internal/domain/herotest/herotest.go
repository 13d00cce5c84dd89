// Package herotest builds hero fixtures for tests.
package herotest

import (
	"github.com/okian/draftsensei/internal/domain/model"
)

// Mutator adjusts a fixture's attributes.
type Mutator func(*model.Attributes)

// New returns a hero with every rating set to 2, then applies muts.
func New(name string, role model.Role, lanes []model.Lane, muts ...Mutator) *model.Hero {
	h := &model.Hero{Name: name}
	a := &h.Attributes
	a.Combat = model.Combat{
		BurstDamage: 2, SustainedDamage: 2, Poke: 2, AOEDamage: 2,
		SingleTarget: 2, AntiTank: 2, AntiSquishy: 2, DPS: 2,
	}
	a.Survivability = model.Survivability{Tankiness: 2, Mobility: 2, Escape: 2, Regen: 2, Shields: 2}
	a.Utility = model.Utility{CrowdControl: 2, Displacement: 2, Silence: 2, Stun: 2, Slow: 2, TeamBuff: 2, TeamHeal: 2}
	a.RangePlaystyle = model.RangePlaystyle{Range: 2, Engage: 2, Peel: 2, Splitpush: 2, Waveclear: 2, VisionOrTraps: 2}
	a.PowerCurve = model.PowerCurve{EarlyGame: 2, MidGame: 2, LateGame: 2, Scaling: 2}
	a.Roles = model.Positions{PrimaryRole: role, LanePriority: lanes}
	for _, m := range muts {
		m(a)
	}
	return h
}

// Record converts a hero back into its stored shape.
func Record(h *model.Hero) model.HeroRecord {
	a := h.Attributes
	lanes := make([]string, len(a.Roles.LanePriority))
	for i, l := range a.Roles.LanePriority {
		lanes[i] = l.Label()
	}
	return model.HeroRecord{Name: h.Name, Meta: &model.Meta{Attributes: &model.RawAttributes{
		Combat: map[string]int{
			"burst_damage": a.Combat.BurstDamage, "sustained_damage": a.Combat.SustainedDamage,
			"poke": a.Combat.Poke, "aoe_damage": a.Combat.AOEDamage, "single_target": a.Combat.SingleTarget,
			"anti_tank": a.Combat.AntiTank, "anti_squishy": a.Combat.AntiSquishy, "dps": a.Combat.DPS,
		},
		Survivability: map[string]int{
			"tankiness": a.Survivability.Tankiness, "mobility": a.Survivability.Mobility,
			"escape": a.Survivability.Escape, "regen": a.Survivability.Regen, "shields": a.Survivability.Shields,
		},
		Utility: map[string]int{
			"crowd_control": a.Utility.CrowdControl, "displacement": a.Utility.Displacement,
			"silence": a.Utility.Silence, "stun": a.Utility.Stun, "slow": a.Utility.Slow,
			"team_buff": a.Utility.TeamBuff, "team_heal": a.Utility.TeamHeal,
		},
		RangePlaystyle: map[string]int{
			"range": a.RangePlaystyle.Range, "engage": a.RangePlaystyle.Engage, "peel": a.RangePlaystyle.Peel,
			"splitpush": a.RangePlaystyle.Splitpush, "waveclear": a.RangePlaystyle.Waveclear,
			"vision_or_traps": a.RangePlaystyle.VisionOrTraps,
		},
		PowerCurve: map[string]int{
			"early_game": a.PowerCurve.EarlyGame, "mid_game": a.PowerCurve.MidGame,
			"late_game": a.PowerCurve.LateGame, "scaling": a.PowerCurve.Scaling,
		},
		Roles: &model.RawRoles{
			PrimaryRole:   string(a.Roles.PrimaryRole),
			SecondaryRole: string(a.Roles.SecondaryRole),
			LanePriority:  lanes,
		},
	}}}
}

// Records converts heroes into stored records.
func Records(heroes ...*model.Hero) []model.HeroRecord {
	out := make([]model.HeroRecord, len(heroes))
	for i, h := range heroes {
		out[i] = Record(h)
	}
	return out
}

// Roster returns a small, fixed set of heroes covering every role and lane.
func Roster() []*model.Hero {
	return []*model.Hero{
		New("Khufra", model.RoleTank, []model.Lane{model.LaneRoam, model.LaneEXP}, func(a *model.Attributes) {
			a.Survivability.Tankiness, a.Utility.CrowdControl, a.RangePlaystyle.Engage = 5, 5, 5
			a.RangePlaystyle.Peel, a.Combat.DPS, a.Combat.BurstDamage = 3, 1, 1
		}),
		New("Franco", model.RoleTank, []model.Lane{model.LaneRoam}, func(a *model.Attributes) {
			a.Survivability.Tankiness, a.Utility.CrowdControl, a.RangePlaystyle.Engage = 4, 4, 4
			a.Survivability.Mobility = 1
		}),
		New("Yin", model.RoleFighter, []model.Lane{model.LaneEXP, model.LaneJungle}, func(a *model.Attributes) {
			a.Combat.BurstDamage, a.Combat.AntiSquishy, a.Combat.DPS = 4, 4, 4
			a.PowerCurve.EarlyGame, a.PowerCurve.MidGame = 4, 4
			a.Survivability.Tankiness = 3
		}),
		New("Fanny", model.RoleAssassin, []model.Lane{model.LaneJungle}, func(a *model.Attributes) {
			a.Combat.BurstDamage, a.Combat.AntiSquishy, a.Survivability.Mobility, a.Survivability.Escape = 5, 5, 5, 5
			a.Survivability.Tankiness, a.RangePlaystyle.Range = 1, 1
		}),
		New("Gusion", model.RoleAssassin, []model.Lane{model.LaneJungle, model.LaneMid}, func(a *model.Attributes) {
			a.Combat.BurstDamage, a.Combat.AntiSquishy, a.Survivability.Mobility = 5, 5, 4
			a.Survivability.Tankiness = 1
		}),
		New("Valentina", model.RoleMage, []model.Lane{model.LaneMid}, func(a *model.Attributes) {
			a.Combat.BurstDamage, a.Combat.DPS, a.Utility.CrowdControl = 4, 3, 3
			a.PowerCurve.LateGame, a.PowerCurve.Scaling = 4, 4
		}),
		New("Chang'e", model.RoleMage, []model.Lane{model.LaneMid, model.LaneGold}, func(a *model.Attributes) {
			a.Combat.Poke, a.Combat.AOEDamage, a.Combat.SustainedDamage, a.RangePlaystyle.Range = 5, 4, 4, 4
			a.RangePlaystyle.Waveclear, a.Survivability.Mobility = 5, 1
		}),
		New("Granger", model.RoleMarksman, []model.Lane{model.LaneGold, model.LaneJungle}, func(a *model.Attributes) {
			a.Combat.BurstDamage, a.Combat.DPS, a.Combat.AntiSquishy = 4, 4, 4
			a.PowerCurve.LateGame, a.PowerCurve.Scaling, a.RangePlaystyle.Range = 4, 4, 4
			a.Survivability.Tankiness = 1
		}),
		New("Hanabi", model.RoleMarksman, []model.Lane{model.LaneGold}, func(a *model.Attributes) {
			a.Combat.DPS, a.Combat.SustainedDamage, a.Combat.AOEDamage = 5, 5, 4
			a.PowerCurve.LateGame, a.PowerCurve.Scaling = 5, 5
			a.Survivability.Tankiness, a.Survivability.Mobility = 1, 1
		}),
		New("Estes", model.RoleSupport, []model.Lane{model.LaneRoam}, func(a *model.Attributes) {
			a.Utility.TeamHeal, a.Utility.TeamBuff, a.RangePlaystyle.Peel = 5, 4, 4
			a.Combat.DPS, a.Combat.BurstDamage = 1, 1
		}),
		New("Angela", model.RoleSupport, []model.Lane{model.LaneRoam, model.LaneMid}, func(a *model.Attributes) {
			a.Utility.TeamHeal, a.Utility.TeamBuff, a.RangePlaystyle.Peel, a.Utility.CrowdControl = 4, 5, 4, 3
		}),
	}
}

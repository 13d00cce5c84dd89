package engine

import (
	"context"

	"github.com/okian/draftsensei/internal/domain/model"
	"github.com/okian/draftsensei/internal/domain/registry"
	"github.com/okian/draftsensei/internal/domain/weighting"
)

// Analysis describes the ally team and the draft so far.
type Analysis struct {
	AllyTeam         registry.TeamAnalysis `json:"ally_team"`
	CounterAdvantage float64               `json:"counter_advantage"`
	Phase            string                `json:"draft_phase"`
	PriorityRoles    map[model.Role]int    `json:"priority_roles"`
	AvoidRoles       []model.Role          `json:"avoid_roles"`
	OpenLanes        []model.Lane          `json:"open_lanes"`
	NextLane         model.Lane            `json:"next_lane"`
	NextLaneReason   string                `json:"next_lane_reasoning"`
}

// Analyze reports team synergy, role spread, counter advantage and the roles
// the ally team should look for or avoid. Unknown heroes are ignored.
func (e *Engine) Analyze(ctx context.Context, state model.DraftState) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r := e.resolve(state)
	roles := e.catalog.Roles()
	allies := names(r.allies)

	team := e.registry.AnalyzeTeam(allies, roles)
	choice := e.selector.Select(e.laneDraft(r))
	return Analysis{
		AllyTeam:         team,
		CounterAdvantage: e.registry.CounterAdvantage(allies, names(r.enemies)),
		Phase:            state.Phase(),
		PriorityRoles:    e.neededRoles(team.RoleDistribution, len(r.allies)),
		AvoidRoles:       e.crowdedRoles(team.RoleDistribution),
		OpenLanes:        weighting.MissingLanes(r.allies),
		NextLane:         choice.Lane,
		NextLaneReason:   choice.Reasoning,
	}, nil
}

func (e *Engine) neededRoles(count map[model.Role]int, teamSize int) map[model.Role]int {
	t := e.tuning.Analysis
	needed := make(map[model.Role]int)
	if count[model.RoleTank] == 0 {
		needed[model.RoleTank] = t.TankPriority
	}
	if teamSize >= t.SupportMinAllies && count[model.RoleSupport] == 0 {
		needed[model.RoleSupport] = t.SupportPriority
	}
	if count[model.RoleMarksman] == 0 {
		needed[model.RoleMarksman] = t.CarryPriority
	}
	if count[model.RoleMage]+count[model.RoleAssassin] == 0 {
		needed[model.RoleMage] = t.DamagePriority
		needed[model.RoleAssassin] = t.DamagePriority
	}
	return needed
}

func (e *Engine) crowdedRoles(count map[model.Role]int) []model.Role {
	out := []model.Role{}
	for _, r := range model.Roles() {
		if count[r] >= e.tuning.Analysis.AvoidCount {
			out = append(out, r)
		}
	}
	return out
}

func names(heroes []*model.Hero) []string {
	out := make([]string, len(heroes))
	for i, h := range heroes {
		out[i] = h.Name
	}
	return out
}

// Package lane picks the lane the next recommendation should fill.
package lane

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/okian/draftsensei/internal/domain/model"
	"github.com/okian/draftsensei/internal/domain/tuning"
	"github.com/okian/draftsensei/internal/domain/weighting"
)

// Draft is the draft as the selector sees it. Enemies and Allies hold the
// catalog-resolved picks; the counts come from the raw lists.
type Draft struct {
	TotalPicks int
	AllyPicks  int
	// FirstEnemy is the first enemy pick when it resolved, else nil.
	FirstEnemy *model.Hero
	Enemies    []*model.Hero
	Allies     []*model.Hero
}

// Choice is the selected lane with the reasoning behind it.
type Choice struct {
	Lane      model.Lane
	Reasoning string
	// Scores is set in the strategic regime, one entry per open lane.
	Scores map[model.Lane]float64
}

// Selector implements the first pick and strategic regimes.
type Selector struct {
	t tuning.LaneSelection
}

// New returns a Selector over the given table.
func New(t tuning.LaneSelection) *Selector {
	return &Selector{t: t}
}

// FirstPick reports whether d is still in the first pick regime.
func (s *Selector) FirstPick(d Draft) bool {
	return d.TotalPicks <= s.t.FirstPickMaxPicks && d.AllyPicks == 0
}

// Select returns the lane to fill next. Ties go to the earlier lane in
// canonical order.
func (s *Selector) Select(d Draft) Choice {
	if s.FirstPick(d) {
		l := s.firstPickLane(d)
		return Choice{
			Lane:      l,
			Reasoning: fmt.Sprintf("First pick: Secure high-impact %s hero to establish early advantage", l.Label()),
		}
	}

	open := weighting.MissingLanes(d.Allies)
	if len(open) == 0 {
		l := s.t.FallbackLane
		return Choice{Lane: l, Reasoning: s.explain(l, d)}
	}

	scores := make(map[model.Lane]float64, len(open))
	best, bestScore := open[0], math.Inf(-1)
	for _, l := range open {
		v := s.t.ThreatWeight*s.Threat(l, d.Enemies) +
			s.t.NeedWeight*s.Need(l, d.Allies) +
			s.t.ImportanceWeight*s.t.Importance[l]/100
		scores[l] = v
		if v > bestScore {
			best, bestScore = l, v
		}
	}
	return Choice{Lane: best, Reasoning: s.explain(best, d), Scores: scores}
}

func (s *Selector) firstPickLane(d Draft) model.Lane {
	if d.FirstEnemy != nil {
		if l, ok := d.FirstEnemy.PrimaryLane(); ok && slices.Contains(s.t.ContestedLanes, l) {
			return l
		}
	}
	return s.t.FirstPickLane
}

// Threat is the mean normalized strength of enemies listing lane, or the
// uncontested default when none do.
func (s *Selector) Threat(lane model.Lane, enemies []*model.Hero) float64 {
	var total float64
	n := 0
	for _, e := range enemies {
		if !e.PlaysLane(lane) {
			continue
		}
		a := e.Attributes
		total += (float64(a.Combat.DPS)*s.t.ThreatDPS +
			float64(a.Combat.BurstDamage)*s.t.ThreatBurst +
			float64(a.PowerCurve.LateGame)*s.t.ThreatLateGame) / model.MaxRating
		n++
	}
	if n == 0 {
		return s.t.UncontestedThreat
	}
	return total / float64(n)
}

// Need is how much the ally team lacks what lane usually brings, in [0, 1].
func (s *Selector) Need(lane model.Lane, allies []*model.Hero) float64 {
	if len(allies) == 0 {
		return s.t.NoAllyNeed
	}
	var tankiness, magic, physical int
	for _, a := range allies {
		tankiness += a.Attributes.Survivability.Tankiness
		if a.PrimaryRole() == model.RoleMage {
			magic += s.t.RoleDamage
		} else {
			physical += s.t.RoleDamage
		}
	}

	p := s.t.Profiles[lane]
	var need float64
	if tankiness < s.t.TankinessFloor && p.Tankiness > s.t.ContributionMin {
		need += s.t.TankinessNeed
	}
	if magic < s.t.MagicDamageFloor && p.MagicDamage > s.t.ContributionMin {
		need += s.t.MagicDamageNeed
	}
	if physical < s.t.PhysicalDamageFloor && p.PhysicalDamage > s.t.ContributionMin {
		need += s.t.PhysicalDamageNeed
	}
	return math.Min(need, 1)
}

func (s *Selector) explain(l model.Lane, d Draft) string {
	var parts []string
	var contested []string
	for _, e := range d.Enemies {
		if e.PlaysLane(l) {
			contested = append(contested, e.Name)
		}
	}
	if len(contested) > 0 {
		if len(contested) > s.t.ThreatNamesShown {
			contested = contested[:s.t.ThreatNamesShown]
		}
		parts = append(parts, fmt.Sprintf("Counter enemy %s in %s", strings.Join(contested, ", "), l.Label()))
	}
	if d.AllyPicks >= s.t.FillNoteAllies {
		parts = append(parts, fmt.Sprintf("Fill remaining %s position", l.Label()))
	}
	if len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("Strategic pick for %s to strengthen team composition", l.Label()))
	}
	return strings.Join(parts, " | ")
}

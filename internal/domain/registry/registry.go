// Package registry answers pairwise synergy and counter questions between
// heroes from tabulated reference data.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okian/draftsensei/internal/domain/model"
	"golang.org/x/text/cases"
)

// Neutral scores for pairs with no tabulated edge.
const (
	DefaultSynergy = 60.0
	DefaultCounter = 50.0

	// singleHeroTeamSynergy is reported for teams too small to have pairs.
	singleHeroTeamSynergy = 100.0
	// unknownRole stands in for heroes missing from the role map.
	unknownRole = model.RoleFighter
)

// Pair is a hero with the score it earned in a lookup.
type Pair struct {
	Hero  string  `json:"hero"`
	Score float64 `json:"score"`
}

// Registry holds synergy and counter edges plus role compatibility.
// It is immutable after New and safe for concurrent use.
type Registry struct {
	synergy map[string]map[string]float64
	counter map[string]map[string]float64
	roles   map[model.Role]map[model.Role]float64
}

// Option applies a configuration option to the Registry.
type Option func(*Registry)

// WithSynergy adds or overrides an undirected synergy edge.
func WithSynergy(a, b string, score float64) Option {
	return func(r *Registry) {
		put(r.synergy, a, b, score)
	}
}

// WithCounter adds or overrides a directed counter edge.
func WithCounter(attacker, target string, score float64) Option {
	return func(r *Registry) {
		put(r.counter, attacker, target, score)
	}
}

// WithRoleModifier overrides one role pair's compatibility percentage.
func WithRoleModifier(a, b model.Role, percent float64) Option {
	return func(r *Registry) {
		if r.roles[a] == nil {
			r.roles[a] = make(map[model.Role]float64)
		}
		r.roles[a][b] = percent
	}
}

// New returns a registry seeded with the built-in tables, then applies opts.
func New(opts ...Option) *Registry {
	r := Empty()
	for hero, partners := range seedSynergy {
		for partner, score := range partners {
			put(r.synergy, hero, partner, score)
		}
	}
	for hero, targets := range seedCounter {
		for target, score := range targets {
			put(r.counter, hero, target, score)
		}
	}
	for a, row := range seedRoleModifiers {
		r.roles[a] = make(map[model.Role]float64, len(row))
		for b, pct := range row {
			r.roles[a][b] = pct
		}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Empty returns a registry without tabulated data; every lookup is neutral.
func Empty(opts ...Option) *Registry {
	r := &Registry{
		synergy: make(map[string]map[string]float64),
		counter: make(map[string]map[string]float64),
		roles:   make(map[model.Role]map[model.Role]float64),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func key(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

func put(table map[string]map[string]float64, a, b string, score float64) {
	ka := key(a)
	if table[ka] == nil {
		table[ka] = make(map[string]float64)
	}
	table[ka][key(b)] = score
}

func get(table map[string]map[string]float64, a, b string) (float64, bool) {
	row, ok := table[key(a)]
	if !ok {
		return 0, false
	}
	v, ok := row[key(b)]
	return v, ok
}

// LookupSynergy returns the tabulated synergy of the unordered pair.
func (r *Registry) LookupSynergy(a, b string) (float64, bool) {
	if v, ok := get(r.synergy, a, b); ok {
		return v, true
	}
	return get(r.synergy, b, a)
}

// Synergy returns the pair's synergy or DefaultSynergy.
func (r *Registry) Synergy(a, b string) float64 {
	if v, ok := r.LookupSynergy(a, b); ok {
		return v
	}
	return DefaultSynergy
}

// LookupCounter returns how well attacker counters target, if tabulated.
func (r *Registry) LookupCounter(attacker, target string) (float64, bool) {
	return get(r.counter, attacker, target)
}

// Counter returns the directed counter score or DefaultCounter.
func (r *Registry) Counter(attacker, target string) float64 {
	if v, ok := r.LookupCounter(attacker, target); ok {
		return v
	}
	return DefaultCounter
}

// RoleModifier returns the multiplier for a role pair; 1 when untabulated.
func (r *Registry) RoleModifier(a, b model.Role) float64 {
	if pct, ok := r.roles[a][b]; ok {
		return pct / 100
	}
	return 1
}

func roleOf(roles map[string]model.Role, hero string) model.Role {
	if role, ok := roles[hero]; ok && role != "" {
		return role
	}
	return unknownRole
}

// TeamSynergy averages every pairwise synergy scaled by its role modifier.
// Teams with fewer than two heroes score 100.
func (r *Registry) TeamSynergy(heroes []string, roles map[string]model.Role) float64 {
	if len(heroes) < 2 {
		return singleHeroTeamSynergy
	}
	var total float64
	pairs := 0
	for i := 0; i < len(heroes); i++ {
		for j := i + 1; j < len(heroes); j++ {
			score := r.Synergy(heroes[i], heroes[j])
			score *= r.RoleModifier(roleOf(roles, heroes[i]), roleOf(roles, heroes[j]))
			total += score
			pairs++
		}
	}
	return total / float64(pairs)
}

// CounterAdvantage averages the counter score of every (ours, enemy) pair.
func (r *Registry) CounterAdvantage(ours, enemies []string) float64 {
	if len(ours) == 0 || len(enemies) == 0 {
		return DefaultCounter
	}
	var total float64
	for _, o := range ours {
		for _, e := range enemies {
			total += r.Counter(o, e)
		}
	}
	return total / float64(len(ours)*len(enemies))
}

// BestPartners ranks available heroes by synergy with hero.
func (r *Registry) BestPartners(hero string, available []string, n int) []Pair {
	out := make([]Pair, 0, len(available))
	for _, a := range available {
		if key(a) == key(hero) {
			continue
		}
		out = append(out, Pair{Hero: a, Score: r.Synergy(hero, a)})
	}
	return top(out, n)
}

// BestCounters ranks available heroes by mean counter score against targets.
func (r *Registry) BestCounters(targets, available []string, n int) []Pair {
	out := make([]Pair, 0, len(available))
	for _, a := range available {
		score := DefaultCounter
		if len(targets) > 0 {
			var total float64
			for _, t := range targets {
				total += r.Counter(a, t)
			}
			score = total / float64(len(targets))
		}
		out = append(out, Pair{Hero: a, Score: score})
	}
	return top(out, n)
}

func top(pairs []Pair, n int) []Pair {
	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].Score != pairs[j].Score {
			return pairs[i].Score > pairs[j].Score
		}
		return pairs[i].Hero < pairs[j].Hero
	})
	if n >= 0 && len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}

// TeamAnalysis summarizes a team's role spread and synergy.
type TeamAnalysis struct {
	SynergyScore     float64            `json:"synergy_score"`
	RoleDistribution map[model.Role]int `json:"role_distribution"`
	Strengths        []string           `json:"strengths"`
	Weaknesses       []string           `json:"weaknesses"`
	CompositionType  string             `json:"composition_type"`
}

// AnalyzeTeam reports strengths, weaknesses and composition type of heroes.
func (r *Registry) AnalyzeTeam(heroes []string, roles map[string]model.Role) TeamAnalysis {
	count := make(map[model.Role]int)
	for _, h := range heroes {
		count[roleOf(roles, h)]++
	}
	a := TeamAnalysis{
		SynergyScore:     r.TeamSynergy(heroes, roles),
		RoleDistribution: count,
		Strengths:        []string{},
		Weaknesses:       []string{},
	}

	if count[model.RoleTank] >= 1 {
		a.Strengths = append(a.Strengths, "Good frontline presence")
	} else {
		a.Weaknesses = append(a.Weaknesses, "Lacks tank protection")
	}
	if count[model.RoleSupport] >= 1 {
		a.Strengths = append(a.Strengths, "Good team sustain")
	} else {
		a.Weaknesses = append(a.Weaknesses, "Limited team support")
	}
	if count[model.RoleMarksman] >= 1 {
		a.Strengths = append(a.Strengths, "Strong late game damage")
	}
	if count[model.RoleAssassin] >= 2 {
		a.Strengths = append(a.Strengths, "High burst potential")
		a.Weaknesses = append(a.Weaknesses, "May lack sustained damage")
	}
	for _, role := range model.Roles() {
		if count[role] >= 3 {
			a.Weaknesses = append(a.Weaknesses, fmt.Sprintf("Too many %ss - lacks role diversity", role))
		}
	}
	a.CompositionType = compositionType(count)
	return a
}

func compositionType(count map[model.Role]int) string {
	switch {
	case count[model.RoleAssassin] >= 2:
		return "Burst/Dive Composition"
	case count[model.RoleMage] >= 2:
		return "Poke/Magic Composition"
	case count[model.RoleTank] >= 2:
		return "Tank/Sustain Composition"
	case count[model.RoleFighter] >= 2:
		return "Bruiser Composition"
	default:
		return "Balanced Composition"
	}
}

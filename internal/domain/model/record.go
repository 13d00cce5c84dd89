package model

import (
	"fmt"
	"strings"
)

// HeroRecord is a hero as read from an external store, before validation.
// Meta is nil when the store had no usable meta document for the hero.
type HeroRecord struct {
	Name string `json:"name" yaml:"name"`
	Meta *Meta  `json:"meta" yaml:"meta"`
}

// Meta mirrors the stored meta document. Unknown sections are ignored.
type Meta struct {
	Attributes *RawAttributes `json:"attributes" yaml:"attributes"`
}

// RawAttributes keeps ratings as loose maps so missing fields can be told
// apart from zero ratings.
type RawAttributes struct {
	Combat         map[string]int `json:"combat" yaml:"combat"`
	Survivability  map[string]int `json:"survivability" yaml:"survivability"`
	Utility        map[string]int `json:"utility" yaml:"utility"`
	RangePlaystyle map[string]int `json:"range_playstyle" yaml:"range_playstyle"`
	PowerCurve     map[string]int `json:"power_curve" yaml:"power_curve"`
	Roles          *RawRoles      `json:"roles" yaml:"roles"`
}

// RawRoles is the stored roles section.
type RawRoles struct {
	PrimaryRole   string   `json:"primary_role" yaml:"primary_role"`
	SecondaryRole string   `json:"secondary_role" yaml:"secondary_role"`
	LanePriority  []string `json:"lane_priority" yaml:"lane_priority"`
}

// section binds a stored category to the typed fields it fills.
type section struct {
	name   string
	values map[string]int
	fields map[string]*int
}

// Validate converts the record into a Hero. Every rating must be present and
// within [MinRating, MaxRating]; lanes must be known and unique.
func (r HeroRecord) Validate() (Hero, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return Hero{}, ErrEmptyName
	}
	if r.Meta == nil || r.Meta.Attributes == nil {
		return Hero{}, fmt.Errorf("%s: %w: no attributes", name, ErrIncompleteAttributes)
	}
	raw := r.Meta.Attributes
	h := Hero{Name: name}
	a := &h.Attributes

	sections := []section{
		{name: "combat", values: raw.Combat, fields: map[string]*int{
			"burst_damage":     &a.Combat.BurstDamage,
			"sustained_damage": &a.Combat.SustainedDamage,
			"poke":             &a.Combat.Poke,
			"aoe_damage":       &a.Combat.AOEDamage,
			"single_target":    &a.Combat.SingleTarget,
			"anti_tank":        &a.Combat.AntiTank,
			"anti_squishy":     &a.Combat.AntiSquishy,
			"dps":              &a.Combat.DPS,
		}},
		{name: "survivability", values: raw.Survivability, fields: map[string]*int{
			"tankiness": &a.Survivability.Tankiness,
			"mobility":  &a.Survivability.Mobility,
			"escape":    &a.Survivability.Escape,
			"regen":     &a.Survivability.Regen,
			"shields":   &a.Survivability.Shields,
		}},
		{name: "utility", values: raw.Utility, fields: map[string]*int{
			"crowd_control": &a.Utility.CrowdControl,
			"displacement":  &a.Utility.Displacement,
			"silence":       &a.Utility.Silence,
			"stun":          &a.Utility.Stun,
			"slow":          &a.Utility.Slow,
			"team_buff":     &a.Utility.TeamBuff,
			"team_heal":     &a.Utility.TeamHeal,
		}},
		{name: "range_playstyle", values: raw.RangePlaystyle, fields: map[string]*int{
			"range":           &a.RangePlaystyle.Range,
			"engage":          &a.RangePlaystyle.Engage,
			"peel":            &a.RangePlaystyle.Peel,
			"splitpush":       &a.RangePlaystyle.Splitpush,
			"waveclear":       &a.RangePlaystyle.Waveclear,
			"vision_or_traps": &a.RangePlaystyle.VisionOrTraps,
		}},
		{name: "power_curve", values: raw.PowerCurve, fields: map[string]*int{
			"early_game": &a.PowerCurve.EarlyGame,
			"mid_game":   &a.PowerCurve.MidGame,
			"late_game":  &a.PowerCurve.LateGame,
			"scaling":    &a.PowerCurve.Scaling,
		}},
	}
	for _, s := range sections {
		if s.values == nil {
			return Hero{}, fmt.Errorf("%s: %w: missing %s", name, ErrIncompleteAttributes, s.name)
		}
		for field, dst := range s.fields {
			v, ok := s.values[field]
			if !ok {
				return Hero{}, fmt.Errorf("%s: %w: missing %s.%s", name, ErrIncompleteAttributes, s.name, field)
			}
			if v < MinRating || v > MaxRating {
				return Hero{}, fmt.Errorf("%s: %w: %s.%s=%d", name, ErrRatingOutOfRange, s.name, field, v)
			}
			*dst = v
		}
	}

	if raw.Roles == nil {
		return Hero{}, fmt.Errorf("%s: %w: missing roles", name, ErrIncompleteAttributes)
	}
	primary, err := ParseRole(raw.Roles.PrimaryRole)
	if err != nil {
		return Hero{}, fmt.Errorf("%s: primary_role: %w", name, err)
	}
	a.Roles.PrimaryRole = primary
	if strings.TrimSpace(raw.Roles.SecondaryRole) != "" {
		secondary, err := ParseRole(raw.Roles.SecondaryRole)
		if err != nil {
			return Hero{}, fmt.Errorf("%s: secondary_role: %w", name, err)
		}
		a.Roles.SecondaryRole = secondary
	}

	seen := make(map[Lane]struct{}, len(raw.Roles.LanePriority))
	a.Roles.LanePriority = make([]Lane, 0, len(raw.Roles.LanePriority))
	for _, s := range raw.Roles.LanePriority {
		l, err := ParseLane(s)
		if err != nil {
			return Hero{}, fmt.Errorf("%s: lane_priority: %w", name, err)
		}
		if _, dup := seen[l]; dup {
			return Hero{}, fmt.Errorf("%s: %w: %s", name, ErrDuplicateLane, l)
		}
		seen[l] = struct{}{}
		a.Roles.LanePriority = append(a.Roles.LanePriority, l)
	}
	return h, nil
}

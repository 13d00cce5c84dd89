// Package model contains domain models passed between layers.
package model

// Rating bounds for every attribute.
const (
	MinRating = 0
	MaxRating = 5
)

// Combat ratings.
type Combat struct {
	BurstDamage     int `json:"burst_damage"`
	SustainedDamage int `json:"sustained_damage"`
	Poke            int `json:"poke"`
	AOEDamage       int `json:"aoe_damage"`
	SingleTarget    int `json:"single_target"`
	AntiTank        int `json:"anti_tank"`
	AntiSquishy     int `json:"anti_squishy"`
	DPS             int `json:"dps"`
}

// Survivability ratings.
type Survivability struct {
	Tankiness int `json:"tankiness"`
	Mobility  int `json:"mobility"`
	Escape    int `json:"escape"`
	Regen     int `json:"regen"`
	Shields   int `json:"shields"`
}

// Utility ratings.
type Utility struct {
	CrowdControl int `json:"crowd_control"`
	Displacement int `json:"displacement"`
	Silence      int `json:"silence"`
	Stun         int `json:"stun"`
	Slow         int `json:"slow"`
	TeamBuff     int `json:"team_buff"`
	TeamHeal     int `json:"team_heal"`
}

// RangePlaystyle ratings.
type RangePlaystyle struct {
	Range         int `json:"range"`
	Engage        int `json:"engage"`
	Peel          int `json:"peel"`
	Splitpush     int `json:"splitpush"`
	Waveclear     int `json:"waveclear"`
	VisionOrTraps int `json:"vision_or_traps"`
}

// PowerCurve ratings.
type PowerCurve struct {
	EarlyGame int `json:"early_game"`
	MidGame   int `json:"mid_game"`
	LateGame  int `json:"late_game"`
	Scaling   int `json:"scaling"`
}

// Positions holds role classification and the ordered lane affinity list
// (primary first).
type Positions struct {
	PrimaryRole   Role   `json:"primary_role"`
	SecondaryRole Role   `json:"secondary_role,omitempty"`
	LanePriority  []Lane `json:"lane_priority"`
}

// Attributes is the fixed-shape attribute bundle of a hero.
type Attributes struct {
	Combat         Combat         `json:"combat"`
	Survivability  Survivability  `json:"survivability"`
	Utility        Utility        `json:"utility"`
	RangePlaystyle RangePlaystyle `json:"range_playstyle"`
	PowerCurve     PowerCurve     `json:"power_curve"`
	Roles          Positions      `json:"roles"`
}

// Hero is a validated catalog entry.
type Hero struct {
	Name       string     `json:"name"`
	Attributes Attributes `json:"attributes"`
}

// PrimaryRole returns the hero's primary role.
func (h *Hero) PrimaryRole() Role {
	return h.Attributes.Roles.PrimaryRole
}

// PrimaryLane returns the first lane of the affinity list.
func (h *Hero) PrimaryLane() (Lane, bool) {
	if len(h.Attributes.Roles.LanePriority) == 0 {
		return "", false
	}
	return h.Attributes.Roles.LanePriority[0], true
}

// LaneRank returns the position of l in the affinity list, or -1.
func (h *Hero) LaneRank(l Lane) int {
	for i, x := range h.Attributes.Roles.LanePriority {
		if x == l {
			return i
		}
	}
	return -1
}

// PlaysLane reports whether l appears anywhere in the affinity list.
func (h *Hero) PlaysLane(l Lane) bool {
	return h.LaneRank(l) >= 0
}

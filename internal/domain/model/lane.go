package model

import (
	"fmt"
	"strings"
)

// Lane is one of the five drafting positions.
type Lane string

// Lane codes.
const (
	LaneEXP    Lane = "exp"
	LaneJungle Lane = "jungle"
	LaneMid    Lane = "mid"
	LaneGold   Lane = "gold"
	LaneRoam   Lane = "roam"
)

// canonical lane order; ties between lanes resolve in this order.
var lanes = [...]Lane{LaneEXP, LaneJungle, LaneMid, LaneGold, LaneRoam}

var laneLabels = map[Lane]string{
	LaneEXP:    "EXP Lane",
	LaneJungle: "Jungle",
	LaneMid:    "Mid Lane",
	LaneGold:   "Gold Lane",
	LaneRoam:   "Roam",
}

// Lanes returns all lanes in canonical order.
func Lanes() []Lane {
	out := make([]Lane, len(lanes))
	copy(out, lanes[:])
	return out
}

// Label returns the display name of the lane, e.g. "Mid Lane".
func (l Lane) Label() string {
	if s, ok := laneLabels[l]; ok {
		return s
	}
	return string(l)
}

// Valid reports whether l is a known lane code.
func (l Lane) Valid() bool {
	_, ok := laneLabels[l]
	return ok
}

// ParseLane accepts a lane code ("mid") or label ("Mid Lane"), case-insensitive.
func ParseLane(s string) (Lane, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, l := range lanes {
		if key == string(l) || key == strings.ToLower(laneLabels[l]) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLane, s)
}

// Role is a hero's combat classification.
type Role string

// Roles.
const (
	RoleTank     Role = "Tank"
	RoleFighter  Role = "Fighter"
	RoleAssassin Role = "Assassin"
	RoleMage     Role = "Mage"
	RoleMarksman Role = "Marksman"
	RoleSupport  Role = "Support"
)

var roles = [...]Role{RoleTank, RoleFighter, RoleAssassin, RoleMage, RoleMarksman, RoleSupport}

// Roles returns all roles in a stable order.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles[:])
	return out
}

// ParseRole matches s against the known roles, case-insensitive.
func ParseRole(s string) (Role, error) {
	key := strings.TrimSpace(s)
	for _, r := range roles {
		if strings.EqualFold(key, string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// Package types contains the request and response shapes shared by the HTTP
// API and the command line client.
package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/okian/draftsensei/internal/domain/engine"
	"github.com/okian/draftsensei/internal/domain/model"
	"github.com/okian/draftsensei/internal/domain/registry"
)

// MaxListLen bounds each hero list in a request.
const MaxListLen = 20

// ErrInvalidRequest marks a request that cannot be served as sent.
var ErrInvalidRequest = errors.New("invalid request")

// DraftRequest is the body of every draft endpoint.
type DraftRequest struct {
	BannedHeroes []string `json:"banned_heroes"`
	EnemyPicks   []string `json:"enemy_picks"`
	AllyPicks    []string `json:"ally_picks"`
	Lane         string   `json:"lane,omitempty"`
	SessionID    string   `json:"session_id,omitempty"`
}

// Validate trims every name and rejects blank names and oversized lists.
// Duplicates are allowed.
func (r *DraftRequest) Validate() error {
	lists := []struct {
		field string
		list  *[]string
	}{
		{"banned_heroes", &r.BannedHeroes},
		{"enemy_picks", &r.EnemyPicks},
		{"ally_picks", &r.AllyPicks},
	}
	for _, l := range lists {
		field, list := l.field, l.list
		if len(*list) > MaxListLen {
			return fmt.Errorf("%s has %d entries, at most %d allowed: %w", field, len(*list), MaxListLen, ErrInvalidRequest)
		}
		for i, name := range *list {
			name = strings.TrimSpace(name)
			if name == "" {
				return fmt.Errorf("%s[%d] is blank: %w", field, i, ErrInvalidRequest)
			}
			(*list)[i] = name
		}
	}
	r.Lane = strings.TrimSpace(r.Lane)
	r.SessionID = strings.TrimSpace(r.SessionID)
	return nil
}

// State returns the draft state described by the request.
func (r DraftRequest) State() model.DraftState {
	return model.DraftState{Bans: r.BannedHeroes, EnemyPicks: r.EnemyPicks, AllyPicks: r.AllyPicks}
}

// SuggestResponse answers /draft/suggest and /draft/pick.
type SuggestResponse struct {
	SessionID string `json:"session_id"`
	engine.Recommendation
}

// BansResponse answers /draft/bans.
type BansResponse struct {
	BestBans []engine.BanSuggestion `json:"best_bans"`
}

// AnalyzeResponse answers /draft/analyze.
type AnalyzeResponse struct {
	engine.Analysis
}

// HeroSummary is a hero as listed.
type HeroSummary struct {
	Name          string     `json:"name"`
	PrimaryRole   model.Role `json:"primary_role"`
	SecondaryRole model.Role `json:"secondary_role,omitempty"`
	Lanes         []string   `json:"lanes"`
}

// HeroDetail is one hero with its full attribute record.
type HeroDetail struct {
	HeroSummary
	Attributes model.Attributes `json:"attributes"`
}

// HeroList is a page of heroes.
type HeroList struct {
	Heroes []HeroSummary `json:"heroes"`
	Total  int           `json:"total"`
}

// PairsResponse lists heroes related to Hero with their scores.
type PairsResponse struct {
	Hero  string          `json:"hero"`
	Pairs []registry.Pair `json:"pairs"`
}

// Summarize converts a catalog hero into its listing shape.
func Summarize(h *model.Hero) HeroSummary {
	lanes := make([]string, len(h.Attributes.Roles.LanePriority))
	for i, l := range h.Attributes.Roles.LanePriority {
		lanes[i] = l.Label()
	}
	return HeroSummary{
		Name:          h.Name,
		PrimaryRole:   h.PrimaryRole(),
		SecondaryRole: h.Attributes.Roles.SecondaryRole,
		Lanes:         lanes,
	}
}

// Detail converts a catalog hero into its detail shape.
func Detail(h *model.Hero) HeroDetail {
	return HeroDetail{HeroSummary: Summarize(h), Attributes: h.Attributes}
}

// HeroQuery filters and pages a hero listing. Empty fields match anything.
type HeroQuery struct {
	Role   string
	Lane   string
	Search string
	Skip   int
	Limit  int
}

// SessionResponse describes a diversity session.
type SessionResponse struct {
	SessionID string         `json:"session_id"`
	Counts    map[string]int `json:"recommendation_counts"`
}

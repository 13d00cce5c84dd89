package model

// DraftState is the record of bans and picks at one point of a draft.
// A hero listed more than once is simply excluded from candidacy.
type DraftState struct {
	Bans       []string `json:"banned_heroes"`
	EnemyPicks []string `json:"enemy_picks"`
	AllyPicks  []string `json:"ally_picks"`
}

// TotalPicks returns the number of picks made by both sides.
func (s DraftState) TotalPicks() int {
	return len(s.EnemyPicks) + len(s.AllyPicks)
}

// Taken returns the set of heroes no longer available for picking.
func (s DraftState) Taken() map[string]struct{} {
	out := make(map[string]struct{}, len(s.Bans)+len(s.EnemyPicks)+len(s.AllyPicks))
	for _, list := range [][]string{s.Bans, s.EnemyPicks, s.AllyPicks} {
		for _, h := range list {
			out[h] = struct{}{}
		}
	}
	return out
}

// Phase names the draft stage by total picks: early (<=2), mid (<=6), late.
func (s DraftState) Phase() string {
	switch n := s.TotalPicks(); {
	case n <= 2:
		return "early"
	case n <= 6:
		return "mid"
	default:
		return "late"
	}
}

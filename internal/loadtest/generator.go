package loadtest

import (
	"context"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/okian/draftsensei/internal/domain/types"
	"github.com/okian/draftsensei/pkg/logger"
)

// Draft shape limits for one generated request.
const (
	maxBans       = 6
	maxEnemyPicks = 5
	maxAllyPicks  = 4
	laneOneIn     = 3
)

var laneCodes = [...]string{"exp", "jungle", "mid", "gold", "roam"}

// generateDrafts builds n random drafts from the hero names. No draft uses a
// hero twice and every draft leaves at least one hero available. Roughly one
// draft in three asks for a specific lane.
func generateDrafts(ctx context.Context, config *Config, heroes []string, stats *Stats) []types.DraftRequest {
	logger.Get().Info(ctx, "generating drafts", logger.Int("drafts", config.Drafts), logger.Int("heroes", len(heroes)))

	r := rand.New(rand.NewPCG(config.Seed, config.Seed^0x9e3779b97f4a7c15))

	sessions := make([]string, config.Sessions)
	for i := range sessions {
		sessions[i] = uuid.NewString()
	}

	drafts := make([]types.DraftRequest, config.Drafts)
	for i := range drafts {
		drafts[i] = generateDraft(r, heroes)
		if len(sessions) > 0 {
			drafts[i].SessionID = sessions[i%len(sessions)]
		}
	}

	stats.DraftsGenerated = len(drafts)
	return drafts
}

func generateDraft(r *rand.Rand, heroes []string) types.DraftRequest {
	budget := max(len(heroes)-1, 0)
	perm := r.Perm(len(heroes))
	take := func(limit int) []string {
		n := min(r.IntN(limit+1), budget)
		budget -= n
		out := make([]string, n)
		for i := range out {
			out[i] = heroes[perm[0]]
			perm = perm[1:]
		}
		return out
	}

	d := types.DraftRequest{
		BannedHeroes: take(maxBans),
		EnemyPicks:   take(maxEnemyPicks),
		AllyPicks:    take(maxAllyPicks),
	}
	if r.IntN(laneOneIn) == 0 {
		d.Lane = laneCodes[r.IntN(len(laneCodes))]
	}
	return d
}

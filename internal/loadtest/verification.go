package loadtest

import (
	"errors"
	"fmt"

	"github.com/okian/draftsensei/internal/domain/types"
)

// ErrViolation marks a response that breaks the recommendation contract.
var ErrViolation = errors.New("contract violation")

// verifySuggestion checks one answer against the draft that produced it:
// no unavailable hero is suggested, no hero appears twice, the list fits the
// result size and is ordered by score, and the session id is echoed.
func verifySuggestion(req types.DraftRequest, resp types.SuggestResponse, resultSize int) error {
	if resultSize > 0 && len(resp.Suggestions) > resultSize {
		return fmt.Errorf("%w: %d suggestions, result size is %d", ErrViolation, len(resp.Suggestions), resultSize)
	}
	if req.SessionID != "" && resp.SessionID != req.SessionID {
		return fmt.Errorf("%w: session %q answered as %q", ErrViolation, req.SessionID, resp.SessionID)
	}

	taken := make(map[string]struct{}, len(req.BannedHeroes)+len(req.EnemyPicks)+len(req.AllyPicks))
	for _, list := range [][]string{req.BannedHeroes, req.EnemyPicks, req.AllyPicks} {
		for _, h := range list {
			taken[h] = struct{}{}
		}
	}

	seen := make(map[string]struct{}, len(resp.Suggestions))
	for i, s := range resp.Suggestions {
		if _, ok := taken[s.Hero]; ok {
			return fmt.Errorf("%w: suggested unavailable hero %s", ErrViolation, s.Hero)
		}
		if _, ok := seen[s.Hero]; ok {
			return fmt.Errorf("%w: suggested %s twice", ErrViolation, s.Hero)
		}
		seen[s.Hero] = struct{}{}
		if i > 0 && s.Score > resp.Suggestions[i-1].Score {
			return fmt.Errorf("%w: %s (%.2f) ranked below %s (%.2f)", ErrViolation,
				s.Hero, s.Score, resp.Suggestions[i-1].Hero, resp.Suggestions[i-1].Score)
		}
	}
	return nil
}

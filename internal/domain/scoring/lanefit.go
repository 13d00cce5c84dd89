package scoring

import (
	"fmt"

	"github.com/okian/draftsensei/internal/domain/model"
)

// LaneFit scores h by where lane sits in its affinity list.
func (s *Scorer) LaneFit(h *model.Hero, lane model.Lane) Result {
	t := s.tuning.LaneFit
	var score float64
	switch rank := h.LaneRank(lane); {
	case rank < 0:
		score = t.Unlisted
	case rank < len(t.ByRank):
		score = t.ByRank[rank]
	default:
		score = t.Listed
	}

	label := lane.Label()
	var reason string
	switch {
	case score >= t.PrimaryReason:
		reason = "Primary lane: " + label
	case score >= t.ViableReason:
		reason = "Viable for " + label
	case score >= t.SituationalReason:
		reason = "Situational pick for " + label
	case score < t.UnsuitedReason:
		reason = fmt.Sprintf("Not suited for %s", label)
	}
	if reason == "" {
		return Result{Score: score}
	}
	return Result{Score: score, Reasons: []string{reason}}
}

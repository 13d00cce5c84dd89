// Package ranking turns scored candidates into the bounded, ordered
// suggestion list and advances the session's diversity state.
package ranking

import (
	"cmp"
	"math"
	"slices"

	"github.com/okian/draftsensei/internal/domain/diversity"
	"github.com/okian/draftsensei/internal/domain/model"
	"github.com/okian/draftsensei/internal/domain/scoring"
)

// Confidence blend: score share and reason share.
const (
	confidenceScoreShare  = 0.7
	confidenceReasonShare = 0.3
)

// Candidate is a hero with its factor breakdown.
type Candidate struct {
	Hero      *model.Hero
	Breakdown scoring.Breakdown
}

// Suggestion is one ranked hero.
type Suggestion struct {
	Hero       string            `json:"hero"`
	Score      float64           `json:"score"`
	BaseScore  float64           `json:"base_score"`
	Penalty    float64           `json:"diversity_penalty"`
	Role       model.Role        `json:"role"`
	Reasons    []string          `json:"reasons"`
	Confidence float64           `json:"confidence"`
	Breakdown  scoring.Breakdown `json:"breakdown"`
}

// Ranker combines, penalizes, sorts and truncates.
type Ranker struct {
	scorer *scoring.Scorer
}

// New returns a Ranker that reads its table and reason rules from scorer.
func New(scorer *scoring.Scorer) *Ranker {
	return &Ranker{scorer: scorer}
}

// Rank scores every candidate with w, applies the diversity penalty from
// state, and returns at most the configured result size together with the
// state advanced by the returned heroes. Equal scores order by name, so the
// output depends only on the inputs.
func (r *Ranker) Rank(cands []Candidate, w model.Weights, state diversity.State) ([]Suggestion, diversity.State) {
	t := r.scorer.Tuning()
	out := make([]Suggestion, 0, len(cands))
	for _, c := range cands {
		raw := c.Breakdown.Weighted(w)
		penalty := t.DiversityPenalty(state.Count(c.Hero.Name))
		score := round2(raw * (1 - penalty))
		reasons := r.scorer.Reasons(c.Breakdown, raw)
		out = append(out, Suggestion{
			Hero:       c.Hero.Name,
			Score:      score,
			BaseScore:  round2(raw),
			Penalty:    penalty,
			Role:       c.Hero.PrimaryRole(),
			Reasons:    reasons,
			Confidence: Confidence(score, len(reasons), t.Reasons.Max),
			Breakdown:  c.Breakdown,
		})
	}

	slices.SortStableFunc(out, func(a, b Suggestion) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Hero, b.Hero)
	})
	if t.ResultSize > 0 && len(out) > t.ResultSize {
		out = out[:t.ResultSize]
	}

	top := make([]string, len(out))
	for i, s := range out {
		top[i] = s.Hero
	}
	return out, state.Record(top)
}

// Confidence blends the score share with the share of the reason budget used.
func Confidence(score float64, reasons, maxReasons int) float64 {
	v := math.Min(score/100, 1) * confidenceScoreShare
	if maxReasons > 0 {
		v += math.Min(float64(reasons)/float64(maxReasons), 1) * confidenceReasonShare
	}
	return round2(v)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

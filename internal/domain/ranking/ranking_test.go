package ranking_test

import (
	"fmt"
	"testing"

	"github.com/okian/draftsensei/internal/domain/diversity"
	"github.com/okian/draftsensei/internal/domain/herotest"
	"github.com/okian/draftsensei/internal/domain/model"
	"github.com/okian/draftsensei/internal/domain/ranking"
	"github.com/okian/draftsensei/internal/domain/scoring"
	"github.com/okian/draftsensei/internal/domain/tuning"
	. "github.com/smartystreets/goconvey/convey"
)

func flat(name string, v float64) ranking.Candidate {
	r := scoring.Result{Score: v}
	return ranking.Candidate{
		Hero:      herotest.New(name, model.RoleFighter, []model.Lane{model.LaneEXP}),
		Breakdown: scoring.Breakdown{Counter: r, Synergy: r, Composition: r, Priority: r, RoleFit: r},
	}
}

func names(s []ranking.Suggestion) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = v.Hero
	}
	return out
}

func TestRank(t *testing.T) {
	Convey("Given seven flat candidates", t, func() {
		r := ranking.New(scoring.New())
		w := tuning.Default().Weighting.Base
		cands := []ranking.Candidate{
			flat("Alpha", 50), flat("Charlie", 70), flat("Beta", 70),
			flat("Delta", 30), flat("Echo", 60), flat("Foxtrot", 20), flat("Golf", 10),
		}

		Convey("When ranked with an empty state", func() {
			got, next := r.Rank(cands, w, diversity.State{})

			Convey("Then the top five are ordered by score then name", func() {
				So(names(got), ShouldResemble, []string{"Beta", "Charlie", "Echo", "Alpha", "Delta"})
				So(got[0].Score, ShouldEqual, 70)
				So(got[0].Penalty, ShouldEqual, 0)
				So(got[0].Role, ShouldEqual, model.RoleFighter)
				So(got[0].Confidence, ShouldEqual, 0.49)
			})

			Convey("Then only the returned heroes are counted", func() {
				So(next.Len(), ShouldEqual, 5)
				So(next.Count("Beta"), ShouldEqual, 1)
				So(next.Count("Foxtrot"), ShouldEqual, 0)
			})

			Convey("Then a repeat call with the same state gives the same output", func() {
				again, _ := r.Rank(cands, w, diversity.State{})
				So(again, ShouldResemble, got)
			})

			Convey("Then ranking with the advanced state damps repeats", func() {
				second, _ := r.Rank(cands, w, next)
				So(second[0].Hero, ShouldEqual, "Beta")
				So(second[0].Score, ShouldEqual, 66.5)
				So(second[0].BaseScore, ShouldEqual, 70)
				for _, s := range second {
					So(s.Score, ShouldBeLessThanOrEqualTo, s.BaseScore)
				}
			})
		})

		Convey("When one tied hero was already suggested", func() {
			state := diversity.FromCounts(map[string]int{"Beta": 1})
			got, next := r.Rank(cands, w, state)
			So(names(got)[:2], ShouldResemble, []string{"Charlie", "Beta"})
			So(next.Count("Beta"), ShouldEqual, 2)
		})
	})

	Convey("Given no candidates", t, func() {
		r := ranking.New(scoring.New())
		state := diversity.FromCounts(map[string]int{"Beta": 2})
		got, next := r.Rank(nil, tuning.Default().Weighting.Base, state)
		So(got, ShouldBeEmpty)
		So(next.Counts(), ShouldResemble, state.Counts())
	})
}

func TestDiversityPenalty(t *testing.T) {
	Convey("The penalty never decreases with more prior appearances", t, func() {
		tab := tuning.Default()
		expected := []float64{0, 0.05, 0.05, 0.10, 0.10, 0.15, 0.15, 0.15}
		prev := 0.0
		for n, want := range expected {
			got := tab.DiversityPenalty(n)
			So(fmt.Sprint(n, got), ShouldEqual, fmt.Sprint(n, want))
			So(got, ShouldBeGreaterThanOrEqualTo, prev)
			prev = got
		}
	})
}

func TestConfidence(t *testing.T) {
	Convey("Confidence blends score and reasons", t, func() {
		So(ranking.Confidence(100, 5, 5), ShouldEqual, 1)
		So(ranking.Confidence(150, 9, 5), ShouldEqual, 1)
		So(ranking.Confidence(50, 2, 5), ShouldEqual, 0.47)
		So(ranking.Confidence(0, 0, 5), ShouldEqual, 0)
	})
}

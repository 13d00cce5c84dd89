package loadtest

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/draftsensei/internal/adapters/http/api"
	service "github.com/okian/draftsensei/internal/app"
	"github.com/okian/draftsensei/internal/domain/engine"
	"github.com/okian/draftsensei/internal/domain/herotest"
	"github.com/okian/draftsensei/internal/domain/ranking"
	"github.com/okian/draftsensei/internal/domain/types"
	"github.com/okian/draftsensei/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

func TestGenerateDraft(t *testing.T) {
	Convey("Given a small hero pool", t, func() {
		heroes := []string{"A", "B", "C", "D", "E", "F", "G"}
		r := rand.New(rand.NewPCG(1, 2))

		Convey("Then every draft uses distinct heroes and leaves one available", func() {
			for range 500 {
				d := generateDraft(r, heroes)
				used := map[string]bool{}
				for _, list := range [][]string{d.BannedHeroes, d.EnemyPicks, d.AllyPicks} {
					for _, h := range list {
						So(used[h], ShouldBeFalse)
						used[h] = true
					}
				}
				So(len(used), ShouldBeLessThan, len(heroes))
				So(len(d.EnemyPicks), ShouldBeLessThanOrEqualTo, maxEnemyPicks)
				So(len(d.AllyPicks), ShouldBeLessThanOrEqualTo, maxAllyPicks)
				So(d.Validate(), ShouldBeNil)
			}
		})
	})

	Convey("Given the same seed twice", t, func() {
		cfg := &Config{Drafts: 20, Sessions: 0, Seed: 42}
		heroes := []string{"A", "B", "C", "D", "E", "F"}

		Convey("Then the drafts are identical", func() {
			a := generateDrafts(context.Background(), cfg, heroes, &Stats{})
			b := generateDrafts(context.Background(), cfg, heroes, &Stats{})
			So(a, ShouldResemble, b)
		})
	})

	Convey("Given sessions to spread", t, func() {
		cfg := &Config{Drafts: 9, Sessions: 3, Seed: 1}
		stats := &Stats{}
		drafts := generateDrafts(context.Background(), cfg, []string{"A", "B", "C"}, stats)

		Convey("Then drafts cycle through the session ids", func() {
			So(stats.DraftsGenerated, ShouldEqual, 9)
			So(drafts[0].SessionID, ShouldNotBeBlank)
			So(drafts[3].SessionID, ShouldEqual, drafts[0].SessionID)
			So(drafts[1].SessionID, ShouldNotEqual, drafts[0].SessionID)
		})
	})
}

func TestVerifySuggestion(t *testing.T) {
	Convey("Given a draft", t, func() {
		req := types.DraftRequest{BannedHeroes: []string{"Ling"}, EnemyPicks: []string{"Fanny"}, SessionID: "s"}
		resp := func(heroes ...string) types.SuggestResponse {
			out := types.SuggestResponse{SessionID: "s"}
			for i, h := range heroes {
				out.Suggestions = append(out.Suggestions, ranking.Suggestion{Hero: h, Score: float64(90 - i)})
			}
			return out
		}

		Convey("A well formed answer passes", func() {
			So(verifySuggestion(req, resp("Khufra", "Tigreal"), 5), ShouldBeNil)
		})

		Convey("Suggesting a banned hero is a violation", func() {
			err := verifySuggestion(req, resp("Ling"), 5)
			So(errors.Is(err, ErrViolation), ShouldBeTrue)
		})

		Convey("Too many suggestions is a violation", func() {
			err := verifySuggestion(req, resp("A", "B", "C"), 2)
			So(errors.Is(err, ErrViolation), ShouldBeTrue)
		})

		Convey("A repeated hero is a violation", func() {
			r := resp("A", "B")
			r.Suggestions[1].Hero = "A"
			So(errors.Is(verifySuggestion(req, r, 5), ErrViolation), ShouldBeTrue)
		})

		Convey("Ascending scores are a violation", func() {
			r := resp("A", "B")
			r.Suggestions[1].Score = 99
			So(errors.Is(verifySuggestion(req, r, 5), ErrViolation), ShouldBeTrue)
		})

		Convey("A different session id is a violation", func() {
			r := resp("A")
			r.SessionID = "other"
			So(errors.Is(verifySuggestion(req, r, 5), ErrViolation), ShouldBeTrue)
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given a running draft service", t, func() {
		svc := service.New(service.WithSource(herotest.NewSource(herotest.Roster()...)))
		So(svc.Start(context.Background()), ShouldBeNil)
		Reset(svc.Stop)

		mux := http.NewServeMux()
		api.NewServer(svc, svc).Register(context.Background(), mux)
		srv := httptest.NewServer(mux)
		Reset(srv.Close)

		out := filepath.Join(t.TempDir(), "out", "drafts.json")
		cfg := &Config{
			BaseURL:    srv.URL,
			Drafts:     60,
			Sessions:   3,
			Workers:    4,
			Timeout:    5 * time.Second,
			Seed:       7,
			OutputFile: out,
		}

		Convey("When the load test runs", func() {
			stats, err := Run(context.Background(), cfg)

			Convey("Then every draft is answered within the contract", func() {
				So(err, ShouldBeNil)
				So(stats.Submitted, ShouldEqual, 60)
				So(stats.Successful, ShouldEqual, 60)
				So(stats.Violations, ShouldEqual, 0)
				So(stats.Suggestions, ShouldBeGreaterThan, 0)
			})

			Convey("And the drafts are saved", func() {
				b, err := os.ReadFile(out)
				So(err, ShouldBeNil)
				var drafts []types.DraftRequest
				So(json.Unmarshal(b, &drafts), ShouldBeNil)
				So(drafts, ShouldHaveLength, 60)
			})
		})
	})

	Convey("Given a service that rejects every draft", t, func() {
		mux := http.NewServeMux()
		api.NewServer(failingDeps{}, statsOnly{}).Register(context.Background(), mux)
		srv := httptest.NewServer(mux)
		Reset(srv.Close)

		Convey("Then the run reports the failures", func() {
			stats, err := Run(context.Background(), &Config{
				BaseURL: srv.URL, Drafts: 5, Workers: 2, Timeout: time.Second, RPS: 1000,
			})
			So(err, ShouldNotBeNil)
			So(stats.Failed, ShouldEqual, 5)
		})
	})
}

type statsOnly struct{}

func (statsOnly) GetStats() map[string]interface{} { return map[string]interface{}{"resultSize": 5} }

// failingDeps lists one hero and fails every draft.
type failingDeps struct{}

var errDown = errors.New("engine down")

func (failingDeps) Suggest(context.Context, types.DraftRequest) (types.SuggestResponse, error) {
	return types.SuggestResponse{}, errDown
}

func (failingDeps) Pick(context.Context, types.DraftRequest) (types.SuggestResponse, error) {
	return types.SuggestResponse{}, errDown
}

func (failingDeps) Bans(context.Context, types.DraftRequest) (types.BansResponse, error) {
	return types.BansResponse{}, errDown
}

func (failingDeps) Analyze(context.Context, types.DraftRequest) (types.AnalyzeResponse, error) {
	return types.AnalyzeResponse{}, errDown
}

func (failingDeps) Heroes(context.Context, types.HeroQuery) (types.HeroList, error) {
	return types.HeroList{Heroes: []types.HeroSummary{{Name: "Tigreal"}, {Name: "Fanny"}}, Total: 2}, nil
}

func (failingDeps) Hero(_ context.Context, name string) (types.HeroDetail, error) {
	return types.HeroDetail{}, engine.ErrUnknownHero
}

func (failingDeps) Counters(context.Context, string, int) (types.PairsResponse, error) {
	return types.PairsResponse{}, errDown
}

func (failingDeps) Partners(context.Context, string, int) (types.PairsResponse, error) {
	return types.PairsResponse{}, errDown
}

func (failingDeps) Session(context.Context, string) (types.SessionResponse, error) {
	return types.SessionResponse{}, errDown
}

func (failingDeps) ResetSession(context.Context, string) error { return errDown }

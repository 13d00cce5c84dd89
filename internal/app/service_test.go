package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	service "github.com/okian/draftsensei/internal/app"
	"github.com/okian/draftsensei/internal/adapters/repository"
	"github.com/okian/draftsensei/internal/domain/engine"
	"github.com/okian/draftsensei/internal/domain/herotest"
	"github.com/okian/draftsensei/internal/domain/model"
	"github.com/okian/draftsensei/internal/domain/types"
	"github.com/okian/draftsensei/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func startService(t *testing.T, opts ...service.Option) (*service.Service, *herotest.Source) {
	t.Helper()
	src := herotest.NewSource(herotest.Roster()...)
	svc := service.New(append([]service.Option{service.WithSource(src)}, opts...)...)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return svc, src
}

// hookLogger runs onInfo after every info record.
type hookLogger struct {
	logger.Logger
	onInfo func(msg string)
}

func (l *hookLogger) Info(ctx context.Context, msg string, fields ...logger.Field) {
	l.Logger.Info(ctx, msg, fields...)
	if l.onInfo != nil {
		l.onInfo(msg)
	}
}

func TestService_StartServesOnceEngineIsPublished(t *testing.T) {
	Convey("Given a suggestion made as soon as the first catalog is loaded", t, func() {
		ctx := context.Background()
		var (
			svc        *service.Service
			called     bool
			suggestErr error
		)
		hook := &hookLogger{Logger: logger.Get(), onInfo: func(msg string) {
			if msg != "hero catalog loaded" || called {
				return
			}
			called = true
			_, suggestErr = svc.Suggest(ctx, types.DraftRequest{EnemyPicks: []string{"Fanny"}})
		}}
		svc = service.New(service.WithSource(herotest.NewSource(herotest.Roster()...)), service.WithLogger(hook))

		So(svc.Start(ctx), ShouldBeNil)
		Reset(svc.Stop)

		Convey("Then the session store is already in place", func() {
			So(called, ShouldBeTrue)
			So(suggestErr, ShouldBeNil)
		})
	})
}

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a service over the test roster", t, func() {
		svc, src := startService(t)

		Convey("Then it reports itself started with the catalog size", func() {
			stats := svc.GetStats()
			So(stats["started"], ShouldEqual, true)
			So(stats["heroes"], ShouldEqual, 11)
			So(stats["rejectedHeroes"], ShouldEqual, 0)
			So(stats["activeSessions"], ShouldEqual, 0)
		})

		Convey("When it is started twice", func() {
			So(svc.Start(context.Background()), ShouldBeNil)
		})

		Convey("When it is stopped", func() {
			svc.Stop()

			Convey("Then the source is closed and calls fail", func() {
				So(src.Closed(), ShouldBeTrue)
				So(svc.GetStats()["started"], ShouldEqual, false)
				_, err := svc.Suggest(context.Background(), types.DraftRequest{})
				So(err, ShouldEqual, service.ErrNotStarted)
				So(svc.Reload(context.Background()), ShouldEqual, service.ErrNotStarted)
			})
		})

		Reset(svc.Stop)
	})

	Convey("Given a source with no usable heroes", t, func() {
		src := herotest.NewSource()
		svc := service.New(service.WithSource(src))

		Convey("Then start fails with an empty catalog", func() {
			err := svc.Start(context.Background())
			So(errors.Is(err, engine.ErrEmptyCatalog), ShouldBeTrue)
			So(svc.GetStats()["started"], ShouldEqual, false)
		})
	})

	Convey("Given an unsupported source kind", t, func() {
		svc := service.New(service.WithHeroSource("postgres", "x"))

		Convey("Then start fails", func() {
			err := svc.Start(context.Background())
			So(errors.Is(err, repository.ErrUnsupportedSource), ShouldBeTrue)
		})
	})
}

func TestService_Recommend(t *testing.T) {
	ctx := context.Background()

	Convey("Given a started service", t, func() {
		svc, _ := startService(t)
		Reset(svc.Stop)

		Convey("When an empty draft is suggested without a session", func() {
			resp, err := svc.Suggest(ctx, types.DraftRequest{})
			So(err, ShouldBeNil)

			Convey("Then a session is created and jungle picks come back", func() {
				So(resp.SessionID, ShouldNotBeEmpty)
				So(resp.Lane, ShouldEqual, model.LaneJungle)
				So(resp.Suggestions, ShouldHaveLength, 5)
			})

			Convey("Then the session remembers the recommended heroes", func() {
				sess, err := svc.Session(ctx, resp.SessionID)
				So(err, ShouldBeNil)
				So(sess.Counts, ShouldHaveLength, 5)
				for _, s := range resp.Suggestions {
					So(sess.Counts[s.Hero], ShouldEqual, 1)
				}
			})

			Convey("Then repeating the request in the session penalizes repeats", func() {
				again, err := svc.Suggest(ctx, types.DraftRequest{SessionID: resp.SessionID})
				So(err, ShouldBeNil)
				So(again.SessionID, ShouldEqual, resp.SessionID)
				So(again.Suggestions, ShouldHaveLength, 5)
				for _, s := range again.Suggestions {
					if s.BaseScore > 0 && s.Penalty > 0 {
						So(s.Score, ShouldBeLessThan, s.BaseScore)
					}
				}
			})

			Convey("Then resetting the session forgets it", func() {
				So(svc.ResetSession(ctx, resp.SessionID), ShouldBeNil)
				_, err := svc.Session(ctx, resp.SessionID)
				So(errors.Is(err, repository.ErrSessionNotFound), ShouldBeTrue)
				So(errors.Is(svc.ResetSession(ctx, resp.SessionID), repository.ErrSessionNotFound), ShouldBeTrue)
			})
		})

		Convey("When a client supplies its own session id", func() {
			resp, err := svc.Suggest(ctx, types.DraftRequest{SessionID: "match-42"})
			So(err, ShouldBeNil)
			So(resp.SessionID, ShouldEqual, "match-42")
		})

		Convey("When a roam pick is requested against Fanny", func() {
			resp, err := svc.Pick(ctx, types.DraftRequest{EnemyPicks: []string{" Fanny "}, Lane: "Roam"})
			So(err, ShouldBeNil)

			Convey("Then her hard counter leads", func() {
				So(resp.Lane, ShouldEqual, model.LaneRoam)
				So(resp.Suggestions[0].Hero, ShouldEqual, "Khufra")
			})
		})

		Convey("When suggest is given a lane", func() {
			resp, err := svc.Suggest(ctx, types.DraftRequest{Lane: "gold"})
			So(err, ShouldBeNil)
			So(resp.Lane, ShouldEqual, model.LaneGold)
			So(resp.Reasoning, ShouldEqual, "Requested pick for Gold Lane")
		})

		Convey("When a pick has no lane", func() {
			_, err := svc.Pick(ctx, types.DraftRequest{})
			So(err, ShouldEqual, service.ErrLaneRequired)
			So(errors.Is(err, types.ErrInvalidRequest), ShouldBeTrue)
		})

		Convey("When the lane is unknown", func() {
			_, err := svc.Pick(ctx, types.DraftRequest{Lane: "top"})
			So(errors.Is(err, types.ErrInvalidRequest), ShouldBeTrue)
			So(errors.Is(err, model.ErrUnknownLane), ShouldBeTrue)
		})

		Convey("When a list holds a blank name", func() {
			_, err := svc.Suggest(ctx, types.DraftRequest{AllyPicks: []string{"Khufra", "  "}})
			So(errors.Is(err, types.ErrInvalidRequest), ShouldBeTrue)
		})

		Convey("When every hero is taken", func() {
			resp, err := svc.Suggest(ctx, types.DraftRequest{BannedHeroes: catalogNames(t, svc)})
			So(err, ShouldBeNil)
			So(resp.Suggestions, ShouldBeEmpty)
			So(resp.Candidates, ShouldEqual, 0)
		})
	})
}

func TestService_BansAndAnalysis(t *testing.T) {
	ctx := context.Background()

	Convey("Given a started service and an ally Fanny", t, func() {
		svc, _ := startService(t)
		Reset(svc.Stop)
		req := types.DraftRequest{AllyPicks: []string{"Fanny"}}

		Convey("Then Khufra is the first ban", func() {
			resp, err := svc.Bans(ctx, req)
			So(err, ShouldBeNil)
			So(resp.BestBans, ShouldNotBeEmpty)
			So(resp.BestBans[0].Hero, ShouldEqual, "Khufra")
		})

		Convey("Then the analysis reports an early draft", func() {
			resp, err := svc.Analyze(ctx, req)
			So(err, ShouldBeNil)
			So(resp.Phase, ShouldEqual, "early")
			So(resp.AllyTeam.RoleDistribution[model.RoleAssassin], ShouldEqual, 1)
		})
	})
}

func TestService_Heroes(t *testing.T) {
	ctx := context.Background()

	Convey("Given a started service", t, func() {
		svc, _ := startService(t)
		Reset(svc.Stop)

		Convey("Listing everything returns the sorted roster", func() {
			list, err := svc.Heroes(ctx, types.HeroQuery{})
			So(err, ShouldBeNil)
			So(list.Total, ShouldEqual, 11)
			So(list.Heroes[0].Name, ShouldEqual, "Angela")
		})

		Convey("Filters and paging apply in order", func() {
			list, err := svc.Heroes(ctx, types.HeroQuery{Lane: "Gold Lane", Skip: 1, Limit: 1})
			So(err, ShouldBeNil)
			So(list.Total, ShouldEqual, 3)
			So(list.Heroes, ShouldHaveLength, 1)

			list, err = svc.Heroes(ctx, types.HeroQuery{Role: "support"})
			So(err, ShouldBeNil)
			So(list.Total, ShouldEqual, 2)

			list, err = svc.Heroes(ctx, types.HeroQuery{Search: "AN"})
			So(err, ShouldBeNil)
			for _, h := range list.Heroes {
				So(strings.ToLower(h.Name), ShouldContainSubstring, "an")
			}

			list, err = svc.Heroes(ctx, types.HeroQuery{Skip: 50})
			So(err, ShouldBeNil)
			So(list.Heroes, ShouldBeEmpty)
			So(list.Total, ShouldEqual, 11)
		})

		Convey("Bad filters are invalid requests", func() {
			_, err := svc.Heroes(ctx, types.HeroQuery{Role: "Jungler"})
			So(errors.Is(err, types.ErrInvalidRequest), ShouldBeTrue)
			_, err = svc.Heroes(ctx, types.HeroQuery{Lane: "top"})
			So(errors.Is(err, types.ErrInvalidRequest), ShouldBeTrue)
			_, err = svc.Heroes(ctx, types.HeroQuery{Skip: -1})
			So(errors.Is(err, types.ErrInvalidRequest), ShouldBeTrue)
		})

		Convey("One hero, its counters and partners", func() {
			h, err := svc.Hero(ctx, "fanny")
			So(err, ShouldBeNil)
			So(h.Name, ShouldEqual, "Fanny")
			So(h.PrimaryRole, ShouldEqual, model.RoleAssassin)

			counters, err := svc.Counters(ctx, "fanny", 0)
			So(err, ShouldBeNil)
			So(counters.Hero, ShouldEqual, "Fanny")
			So(counters.Pairs, ShouldHaveLength, 5)
			So(counters.Pairs[0].Hero, ShouldEqual, "Khufra")

			partners, err := svc.Partners(ctx, "Fanny", 100)
			So(err, ShouldBeNil)
			So(partners.Pairs, ShouldHaveLength, 10)

			_, err = svc.Hero(ctx, "Nobody")
			So(errors.Is(err, engine.ErrUnknownHero), ShouldBeTrue)
		})
	})
}

func TestService_Reload(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc, src := startService(t, service.WithGaugeInterval(10*time.Millisecond))
		Reset(svc.Stop)

		Convey("When the source gains a hero and is reloaded", func() {
			src.Set(append(herotest.Roster(), herotest.New("Zilong", model.RoleFighter, []model.Lane{model.LaneEXP}))...)
			So(svc.Reload(context.Background()), ShouldBeNil)

			Convey("Then the new hero is served", func() {
				So(svc.GetStats()["heroes"], ShouldEqual, 12)
				_, err := svc.Hero(context.Background(), "Zilong")
				So(err, ShouldBeNil)
			})
		})

		Convey("When the source fails", func() {
			src.Fail(errors.New("disk gone"))

			Convey("Then the previous catalog stays active", func() {
				So(svc.Reload(context.Background()), ShouldNotBeNil)
				So(svc.GetStats()["heroes"], ShouldEqual, 11)
			})
		})

		Convey("When the source is emptied", func() {
			src.Set()

			Convey("Then the reload is refused", func() {
				So(errors.Is(svc.Reload(context.Background()), engine.ErrEmptyCatalog), ShouldBeTrue)
				So(svc.GetStats()["heroes"], ShouldEqual, 11)
			})
		})
	})
}

func catalogNames(t *testing.T, svc *service.Service) []string {
	t.Helper()
	list, err := svc.Heroes(context.Background(), types.HeroQuery{})
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, len(list.Heroes))
	for i, h := range list.Heroes {
		names[i] = h.Name
	}
	return names
}

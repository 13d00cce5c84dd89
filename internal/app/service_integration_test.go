package service_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	service "github.com/okian/draftsensei/internal/app"
	"github.com/okian/draftsensei/internal/adapters/repository"
	"github.com/okian/draftsensei/internal/domain/herotest"
	"github.com/okian/draftsensei/internal/domain/model"
	"github.com/okian/draftsensei/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func writeHeroFile(t *testing.T, path string, heroes ...*model.Hero) {
	t.Helper()
	b, err := json.Marshal(map[string]any{"heroes": herotest.Records(heroes...)})
	if err != nil {
		t.Fatal(err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
}

func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(50 * time.Millisecond)
	}
	return false
}

func TestServiceIntegration_FileSource(t *testing.T) {
	Convey("Given a service reading a watched hero file", t, func() {
		path := filepath.Join(t.TempDir(), "heroes.yaml")
		writeHeroFile(t, path, herotest.Roster()...)

		svc := service.New(
			service.WithHeroSource("yaml", path),
			service.WithWatch(true),
		)
		So(svc.Start(context.Background()), ShouldBeNil)
		Reset(svc.Stop)

		So(svc.GetStats()["heroes"], ShouldEqual, 11)

		Convey("When a hero is added to the file", func() {
			writeHeroFile(t, path, append(herotest.Roster(),
				herotest.New("Zilong", model.RoleFighter, []model.Lane{model.LaneEXP}))...)

			Convey("Then the catalog is reloaded", func() {
				So(waitFor(func() bool { return svc.GetStats()["heroes"] == 12 }), ShouldBeTrue)
				h, err := svc.Hero(context.Background(), "Zilong")
				So(err, ShouldBeNil)
				So(h.Lanes, ShouldResemble, []string{"EXP Lane"})
			})
		})

		Convey("When the file is replaced with garbage", func() {
			So(os.WriteFile(path, []byte("heroes: [unclosed"), 0o600), ShouldBeNil)

			Convey("Then the previous catalog keeps serving", func() {
				time.Sleep(500 * time.Millisecond)
				So(svc.GetStats()["heroes"], ShouldEqual, 11)
				resp, err := svc.Suggest(context.Background(), types.DraftRequest{})
				So(err, ShouldBeNil)
				So(resp.Suggestions, ShouldHaveLength, 5)
			})
		})
	})
}

func TestServiceIntegration_SQLiteSource(t *testing.T) {
	Convey("Given a SQLite database seeded with the roster", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "heroes.db")
		db, err := repository.OpenSQLite(ctx, repository.DefaultSQLiteConfig(path))
		So(err, ShouldBeNil)
		_, err = db.Import(ctx, herotest.Records(herotest.Roster()...))
		So(err, ShouldBeNil)
		So(db.Close(), ShouldBeNil)

		svc := service.New(service.WithHeroSource("sqlite", path))
		So(svc.Start(ctx), ShouldBeNil)
		Reset(svc.Stop)

		Convey("Then recommendations are served from it", func() {
			resp, err := svc.Pick(ctx, types.DraftRequest{EnemyPicks: []string{"Fanny"}, Lane: "roam"})
			So(err, ShouldBeNil)
			So(resp.Suggestions[0].Hero, ShouldEqual, "Khufra")
			So(svc.GetStats()["heroSource"], ShouldEqual, "sqlite")
		})
	})
}

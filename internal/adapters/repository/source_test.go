package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/draftsensei/internal/adapters/repository"
	"github.com/okian/draftsensei/internal/domain/catalog"
	"github.com/okian/draftsensei/internal/domain/herotest"
	. "github.com/smartystreets/goconvey/convey"
)

const heroYAML = `
heroes:
  - name: Tester
    meta:
      attributes:
        combat: {burst_damage: 3, sustained_damage: 3, poke: 1, aoe_damage: 2, single_target: 4, anti_tank: 2, anti_squishy: 4, dps: 3}
        survivability: {tankiness: 2, mobility: 4, escape: 3, regen: 1, shields: 0}
        utility: {crowd_control: 1, displacement: 0, silence: 0, stun: 1, slow: 0, team_buff: 0, team_heal: 0}
        range_playstyle: {range: 1, engage: 3, peel: 0, splitpush: 2, waveclear: 2, vision_or_traps: 0}
        power_curve: {early_game: 4, mid_game: 4, late_game: 2, scaling: 2}
        roles: {primary_role: Assassin, lane_priority: [Jungle, EXP Lane]}
  - name: Typo
    meta:
      attributes:
        combat: {burst_damage: high}
  - name: Bare
`

func TestFileSource(t *testing.T) {
	Convey("Given a YAML hero file", t, func() {
		path := filepath.Join(t.TempDir(), "heroes.yaml")
		So(os.WriteFile(path, []byte(heroYAML), 0o600), ShouldBeNil)

		Convey("When it is read", func() {
			src, err := repository.Open(context.Background(), "yaml", path)
			So(err, ShouldBeNil)
			recs, err := src.Heroes(context.Background())

			Convey("Then every record comes back and only the complete one is cataloged", func() {
				So(err, ShouldBeNil)
				So(recs, ShouldHaveLength, 3)
				So(recs[0].Name, ShouldEqual, "Tester")
				c := catalog.New(recs)
				So(c.Len(), ShouldEqual, 1)
				So(c.Rejected(), ShouldHaveLength, 2)
			})
		})
	})

	Convey("Given a JSON hero file", t, func() {
		doc := map[string]any{"heroes": herotest.Records(herotest.Roster()...)}
		b, err := json.Marshal(doc)
		So(err, ShouldBeNil)
		path := filepath.Join(t.TempDir(), "heroes.json")
		So(os.WriteFile(path, b, 0o600), ShouldBeNil)

		recs, err := repository.NewFileSource(path).Heroes(context.Background())
		So(err, ShouldBeNil)
		So(catalog.New(recs).Len(), ShouldEqual, len(herotest.Roster()))
	})

	Convey("Given a missing file", t, func() {
		_, err := repository.NewFileSource(filepath.Join(t.TempDir(), "none.yaml")).Heroes(context.Background())
		So(errors.Is(err, repository.ErrReadSource), ShouldBeTrue)
	})

	Convey("Given a document that is not YAML", t, func() {
		_, err := repository.DecodeHeroes([]byte("heroes: [unclosed"))
		So(errors.Is(err, repository.ErrReadSource), ShouldBeTrue)
	})

	Convey("Given an unknown source kind", t, func() {
		_, err := repository.Open(context.Background(), "postgres", "x")
		So(errors.Is(err, repository.ErrUnsupportedSource), ShouldBeTrue)
	})
}

func TestSQLiteSource(t *testing.T) {
	Convey("Given a migrated SQLite database", t, func() {
		ctx := context.Background()
		src, err := repository.OpenSQLite(ctx, repository.DefaultSQLiteConfig(filepath.Join(t.TempDir(), "db", "heroes.db")))
		So(err, ShouldBeNil)
		defer src.Close()

		for _, rec := range herotest.Records(herotest.Roster()[:3]...) {
			meta, err := json.Marshal(rec.Meta)
			So(err, ShouldBeNil)
			_, err = src.DB().ExecContext(ctx, `INSERT INTO heroes (name, meta_json) VALUES (?, ?)`, rec.Name, string(meta))
			So(err, ShouldBeNil)
		}
		_, err = src.DB().ExecContext(ctx, `INSERT INTO heroes (name, meta_json) VALUES ('Broken', '{not json')`)
		So(err, ShouldBeNil)
		_, err = src.DB().ExecContext(ctx, `INSERT INTO heroes (name) VALUES ('Empty')`)
		So(err, ShouldBeNil)

		Convey("When the heroes are read", func() {
			recs, err := src.Heroes(ctx)

			Convey("Then rows come back in insertion order and bad meta is dropped", func() {
				So(err, ShouldBeNil)
				So(recs, ShouldHaveLength, 5)
				So(recs[0].Name, ShouldEqual, "Khufra")
				So(recs[3].Meta, ShouldBeNil)
				So(recs[4].Meta, ShouldBeNil)
				So(catalog.New(recs).Len(), ShouldEqual, 3)
			})
		})

		Convey("When records are imported over existing rows", func() {
			roster := herotest.Roster()
			n, err := src.Import(ctx, herotest.Records(roster...))
			So(err, ShouldBeNil)
			So(n, ShouldEqual, len(roster))

			Convey("Then names stay unique and the broken rows are untouched", func() {
				recs, err := src.Heroes(ctx)
				So(err, ShouldBeNil)
				So(recs, ShouldHaveLength, len(roster)+2)
				So(catalog.New(recs).Len(), ShouldEqual, len(roster))
			})
		})

		Convey("A second database opens through Open", func() {
			again, err := repository.Open(ctx, "sqlite", filepath.Join(t.TempDir(), "again.db"))
			So(err, ShouldBeNil)
			So(again.Close(), ShouldBeNil)
		})
	})
}

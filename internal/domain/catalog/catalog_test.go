package catalog_test

import (
	"errors"
	"testing"

	"github.com/okian/draftsensei/internal/domain/catalog"
	"github.com/okian/draftsensei/internal/domain/herotest"
	"github.com/okian/draftsensei/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCatalogNew(t *testing.T) {
	Convey("Given stored records with one incomplete bundle", t, func() {
		records := herotest.Records(herotest.Roster()...)
		broken := herotest.Record(herotest.New("Broken", model.RoleMage, nil))
		delete(broken.Meta.Attributes.Combat, "dps")
		records = append(records, broken, model.HeroRecord{Name: "NoMeta"})

		c := catalog.New(records)

		Convey("Then only complete heroes are kept", func() {
			So(c.Len(), ShouldEqual, len(herotest.Roster()))
			_, ok := c.Lookup("Broken")
			So(ok, ShouldBeFalse)
			_, ok = c.Lookup("NoMeta")
			So(ok, ShouldBeFalse)
		})

		Convey("And the exclusions are reported", func() {
			rejected := c.Rejected()
			So(rejected, ShouldHaveLength, 2)
			So(rejected[0].Name, ShouldEqual, "Broken")
			So(errors.Is(rejected[0].Err, model.ErrIncompleteAttributes), ShouldBeTrue)
		})

		Convey("And lookups ignore case", func() {
			h, ok := c.Lookup("  khufra ")
			So(ok, ShouldBeTrue)
			So(h.Name, ShouldEqual, "Khufra")
			h, ok = c.Lookup("CHANG'E")
			So(ok, ShouldBeTrue)
			So(h.Name, ShouldEqual, "Chang'e")
		})

		Convey("And names come back sorted", func() {
			names := c.Names()
			So(names[0], ShouldEqual, "Angela")
			So(names[len(names)-1], ShouldEqual, "Yin")
		})

		Convey("And Resolve drops unknown names in order", func() {
			got := c.Resolve([]string{"Yin", "Nobody", "fanny"})
			So(got, ShouldHaveLength, 2)
			So(got[0].Name, ShouldEqual, "Yin")
			So(got[1].Name, ShouldEqual, "Fanny")
		})

		Convey("And Filter narrows by role and lane", func() {
			So(c.Filter(model.RoleTank, ""), ShouldHaveLength, 2)
			mids := c.Filter("", model.LaneMid)
			So(mids, ShouldHaveLength, 4)
			So(c.Filter(model.RoleMarksman, model.LaneRoam), ShouldBeEmpty)
		})
	})

	Convey("Given the same hero twice", t, func() {
		yin := herotest.Roster()[2]
		c := catalog.New(herotest.Records(yin, yin))
		So(c.Len(), ShouldEqual, 1)
		So(errors.Is(c.Rejected()[0].Err, catalog.ErrDuplicateHero), ShouldBeTrue)
	})
}

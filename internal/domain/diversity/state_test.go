package diversity_test

import (
	"testing"

	"github.com/okian/draftsensei/internal/domain/diversity"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vmihailenco/msgpack/v5"
)

func TestState(t *testing.T) {
	Convey("Given an empty state", t, func() {
		var s diversity.State

		So(s.Count("Fanny"), ShouldEqual, 0)
		So(s.Len(), ShouldEqual, 0)

		Convey("When a result is recorded", func() {
			next := s.Record([]string{"Fanny", "Yin"})

			Convey("Then the new state counts it and the old one is untouched", func() {
				So(next.Count("Fanny"), ShouldEqual, 1)
				So(next.Count("Yin"), ShouldEqual, 1)
				So(s.Count("Fanny"), ShouldEqual, 0)
			})

			Convey("And recording again increments", func() {
				again := next.Record([]string{"Fanny"})
				So(again.Count("Fanny"), ShouldEqual, 2)
				So(next.Count("Fanny"), ShouldEqual, 1)
				So(again.Heroes(), ShouldResemble, []string{"Fanny", "Yin"})
			})
		})
	})

	Convey("Given stored counts", t, func() {
		s := diversity.FromCounts(map[string]int{"Fanny": 3, "Ghost": 0, "Neg": -2})
		So(s.Len(), ShouldEqual, 1)

		Convey("Counts returns a copy", func() {
			c := s.Counts()
			c["Fanny"] = 99
			So(s.Count("Fanny"), ShouldEqual, 3)
		})
	})
}

func TestStateMsgpack(t *testing.T) {
	Convey("Given a state with counts", t, func() {
		s := diversity.FromCounts(map[string]int{"Fanny": 3, "Yin": 1})

		Convey("When it goes through msgpack", func() {
			b, err := msgpack.Marshal(s)
			So(err, ShouldBeNil)

			var out diversity.State
			So(msgpack.Unmarshal(b, &out), ShouldBeNil)

			Convey("Then the counts survive", func() {
				So(out.Counts(), ShouldResemble, s.Counts())
			})
		})

		Convey("When it is embedded in a struct", func() {
			type file struct {
				Version int             `msgpack:"version"`
				State   diversity.State `msgpack:"state"`
			}
			b, err := msgpack.Marshal(file{Version: 1, State: s})
			So(err, ShouldBeNil)

			var out file
			So(msgpack.Unmarshal(b, &out), ShouldBeNil)
			So(out.State.Count("Fanny"), ShouldEqual, 3)
		})
	})
}

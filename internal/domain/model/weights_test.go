package model_test

import (
	"testing"

	"github.com/okian/draftsensei/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestWeights(t *testing.T) {
	convey.Convey("Given raw weights", t, func() {
		w := model.Weights{Counter: 0.5, Synergy: -0.2, Composition: 0.3, Priority: 0.1, RoleFit: 0.1}

		convey.Convey("Normalize clamps negatives before rescaling", func() {
			n := w.Normalize()
			convey.So(n.Synergy, convey.ShouldEqual, 0)
			convey.So(n.Sum(), convey.ShouldAlmostEqual, 1.0, 1e-9)
			convey.So(n.Counter, convey.ShouldAlmostEqual, 0.5/1.0, 1e-9)
			convey.So(n.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("Validate rejects unnormalized weights", func() {
			convey.So(w.Validate(), convey.ShouldNotBeNil)
		})

		convey.Convey("All-zero weights become uniform", func() {
			n := model.Weights{}.Normalize()
			convey.So(n.Counter, convey.ShouldAlmostEqual, 0.2)
			convey.So(n.Sum(), convey.ShouldAlmostEqual, 1.0, 1e-9)
		})

		convey.Convey("Add shifts each factor", func() {
			got := w.Add(model.Weights{Synergy: 0.2, RoleFit: -0.1})
			convey.So(got.Synergy, convey.ShouldAlmostEqual, 0)
			convey.So(got.RoleFit, convey.ShouldAlmostEqual, 0)
			convey.So(got.Get(model.FactorCounter), convey.ShouldEqual, 0.5)
		})
	})

	convey.Convey("Given weights keyed by factor name", t, func() {
		w, err := model.WeightsFromMap(map[string]float64{"counter": 0.35, "role_fit": 0.05})
		convey.So(err, convey.ShouldBeNil)
		convey.So(w.Counter, convey.ShouldEqual, 0.35)
		convey.So(w.RoleFit, convey.ShouldEqual, 0.05)

		_, err = model.WeightsFromMap(map[string]float64{"luck": 1})
		convey.So(err, convey.ShouldNotBeNil)
	})
}

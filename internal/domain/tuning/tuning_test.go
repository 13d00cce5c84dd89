package tuning

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPay(t *testing.T) {
	Convey("Given tiered payouts", t, func() {
		tiers := []Tier{{Min: 4, Multiplier: 5}, {Min: 3, Multiplier: 3}}

		Convey("The highest reached tier pays", func() {
			So(Pay(5, tiers), ShouldEqual, 25)
			So(Pay(4, tiers), ShouldEqual, 20)
			So(Pay(3, tiers), ShouldEqual, 9)
		})

		Convey("Ratings below every tier pay nothing", func() {
			So(Pay(2, tiers), ShouldEqual, 0)
			So(Pay(0, nil), ShouldEqual, 0)
		})
	})
}

func TestDiversityPenalty(t *testing.T) {
	Convey("Given the default table", t, func() {
		tun := Default()

		So(tun.DiversityPenalty(0), ShouldEqual, 0)
		So(tun.DiversityPenalty(1), ShouldEqual, 0.05)
		So(tun.DiversityPenalty(2), ShouldEqual, 0.05)
		So(tun.DiversityPenalty(3), ShouldEqual, 0.10)
		So(tun.DiversityPenalty(4), ShouldEqual, 0.10)
		So(tun.DiversityPenalty(5), ShouldEqual, 0.15)
		So(tun.DiversityPenalty(50), ShouldEqual, 0.15)
	})
}

func TestDefault(t *testing.T) {
	Convey("Default returns independent tables", t, func() {
		a := Default()
		b := Default()
		a.Diversity[0].Penalty = 1

		So(b.Diversity[0].Penalty, ShouldEqual, 0.15)
		So(a.ResultSize, ShouldEqual, 5)
		So(a.NeutralScore, ShouldEqual, 60)
		So(a.MaxScore, ShouldEqual, 100)
	})
}

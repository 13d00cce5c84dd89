package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/draftsensei/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.HeroSource, convey.ShouldEqual, config.SourceYAML)
			convey.So(cfg.HeroSourcePath, convey.ShouldEqual, "data/heroes.yaml")
			convey.So(cfg.ResultSize, convey.ShouldEqual, 5)
			convey.So(cfg.MaxReasons, convey.ShouldEqual, 5)
			convey.So(cfg.SessionTTL(), convey.ShouldEqual, time.Hour)
			convey.So(cfg.MaxSessions, convey.ShouldEqual, 10_000)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("Then the tuning carries the default weights", func() {
			tn, err := cfg.Tuning()
			convey.So(err, convey.ShouldBeNil)
			convey.So(tn.ResultSize, convey.ShouldEqual, 5)
			convey.So(tn.Weighting.Base.Counter, convey.ShouldAlmostEqual, 0.35)
			convey.So(tn.Weighting.Base.RoleFit, convey.ShouldAlmostEqual, 0.05)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given invalid configs", t, func() {
		convey.Convey("An unknown hero source is rejected", func() {
			cfg := config.New()
			cfg.HeroSource = "postgres"
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("A result size below one is rejected", func() {
			cfg := config.New()
			cfg.ResultSize = 0
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("Negative weights are rejected", func() {
			cfg := config.New()
			cfg.BaseWeights["counter"] = -1
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("All-zero weights are rejected", func() {
			cfg := config.New()
			cfg.BaseWeights = map[string]float64{"counter": 0}
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("Unknown weight factors are rejected", func() {
			cfg := config.New()
			cfg.BaseWeights["luck"] = 0.5
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})

	convey.Convey("Given weights that do not sum to one", t, func() {
		cfg := config.New()
		cfg.BaseWeights = map[string]float64{"counter": 2, "synergy": 2}

		convey.Convey("Then they are normalized", func() {
			w, err := cfg.Weights()
			convey.So(err, convey.ShouldBeNil)
			convey.So(w.Counter, convey.ShouldAlmostEqual, 0.5)
			convey.So(w.Synergy, convey.ShouldAlmostEqual, 0.5)
			convey.So(w.Priority, convey.ShouldEqual, 0)
		})
	})
}

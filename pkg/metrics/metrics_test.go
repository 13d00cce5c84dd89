package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a custom registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then the engine families are registered under the default namespace", func() {
				So(manager, ShouldNotBeNil)
				manager.recommendations.WithLabelValues("auto").Inc()
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				names := map[string]bool{}
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["draftsensei_engine_recommendations_total"], ShouldBeTrue)
				So(names["draftsensei_engine_catalog_heroes"], ShouldBeTrue)
				So(names["draftsensei_engine_system_goroutine_count"], ShouldBeTrue)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("draft"),
				WithLatencyBuckets([]float64{1, 10}),
				WithCandidateBuckets([]float64{5, 5}),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then names and labels follow the options", func() {
				manager.catalogHeroes.Set(3)
				So(testutil.ToFloat64(manager.catalogHeroes), ShouldEqual, 3)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				found := false
				for _, f := range families {
					if f.GetName() != "test_draft_catalog_heroes" {
						continue
					}
					found = true
					labels := f.GetMetric()[0].GetLabel()
					So(labels, ShouldHaveLength, 1)
					So(labels[0].GetName(), ShouldEqual, "env")
					So(labels[0].GetValue(), ShouldEqual, "test")
				}
				So(found, ShouldBeTrue)
			})

			Convey("Then valid buckets apply and unsorted ones are ignored", func() {
				So(manager.latencyBuckets, ShouldResemble, []float64{1, 10})
				So(manager.candidateBuckets, ShouldResemble, []float64{0, 10, 25, 50, 75, 100, 125, 150})
			})
		})

		Convey("When the same registry is used twice", func() {
			registry := prometheus.NewRegistry()
			NewManager(WithPrometheusRegistry(registry))

			Convey("Then registration panics", func() {
				So(func() { NewManager(WithPrometheusRegistry(registry)) }, ShouldPanic)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording a recommendation", func() {
			before := testutil.ToFloat64(globalManager.recommendations.WithLabelValues("explicit"))
			laneBefore := testutil.ToFloat64(globalManager.laneSelected.WithLabelValues("roam"))
			RecordRecommendation("explicit", "roam", 42, 1.5)

			Convey("Then the counters move", func() {
				So(testutil.ToFloat64(globalManager.recommendations.WithLabelValues("explicit")), ShouldEqual, before+1)
				So(testutil.ToFloat64(globalManager.laneSelected.WithLabelValues("roam")), ShouldEqual, laneBefore+1)
			})
		})

		Convey("When updating catalog and session gauges", func() {
			UpdateCatalog(120, 2)
			UpdateActiveSessions(7)

			Convey("Then the gauges hold the values", func() {
				So(testutil.ToFloat64(globalManager.catalogHeroes), ShouldEqual, 120)
				So(testutil.ToFloat64(globalManager.catalogRejected), ShouldEqual, 2)
				So(testutil.ToFloat64(globalManager.activeSessions), ShouldEqual, 7)
			})
		})

		Convey("When recording the remaining families", func() {
			So(func() {
				RecordEmptyRecommendation()
				RecordBanSuggestion()
				RecordAnalysis()
				RecordCatalogReload("ok")
				RecordSessionsEvicted(2)
				RecordHTTPRequest("/draft/suggest", "POST", "200")
				RecordHTTPRequestDuration("/draft/suggest", "POST", "200", 3.2)
				RecordRateLimited()
				RecordErrorByComponent("api", "bad_request")
				RecordErrorByType("bad_request", "warning")
				RecordErrorByEndpoint("/draft/suggest", "POST", "bad_request")
				RecordErrorLatency("api", "bad_request", 0.4)
				UpdateSystemMemoryUsage(1024)
				UpdateSystemGoroutineCount(12)
				RecordSystemGCPauseTime(0.2)
			}, ShouldNotPanic)

			Convey("Then they are exposed on the custom registry", func() {
				count, err := testutil.GatherAndCount(GetRegistry(),
					"draftsensei_engine_http_rate_limited_total",
					"draftsensei_engine_sessions_evicted_total")
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 2)
			})
		})
	})
}

package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/mktlab/attrib/pkg/metrics"
)

func TestRecordHelpers(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("Then every record helper works", func() {
			So(func() {
				metrics.RecordJourneyAttributed("linear")
				metrics.RecordEmptyResult()
				metrics.RecordValidationError()
				metrics.RecordAttributionLatency(1.5)
				metrics.RecordWeightSumDeviation(1e-12)
				metrics.RecordScorerLatency(20)
				metrics.RecordScorerFallback("no_scorer")
				metrics.RecordBatchUnit("compare_models")
				metrics.RecordBatchUnitError("compare_models")
				metrics.RecordBatchDuration("optimize_model", 42)
				metrics.UpdateBatchConcurrency(8)
			}, ShouldNotPanic)
		})

		Convey("Then the recorded families are gatherable", func() {
			metrics.RecordJourneyAttributed("linear")

			families, err := metrics.Registry().Gather()
			So(err, ShouldBeNil)

			names := make(map[string]bool, len(families))
			for _, f := range families {
				names[f.GetName()] = true
			}
			So(names["attrib_engine_journeys_attributed_total"], ShouldBeTrue)
			So(names["attrib_engine_weight_sum_deviation"], ShouldBeTrue)
			So(names["attrib_engine_batch_concurrency"], ShouldBeTrue)
		})
	})
}

func TestNewManager(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		reg := prometheus.NewRegistry()

		Convey("When constructed with options", func() {
			m := metrics.NewManager(
				metrics.WithRegistry(reg),
				metrics.WithNamespace("custom"),
				metrics.WithSubsystem("attr"),
				metrics.WithHistogramBuckets([]float64{1, 10, 100}),
			)

			Convey("Then its metrics land on that registry", func() {
				So(m, ShouldNotBeNil)
				families, err := reg.Gather()
				So(err, ShouldBeNil)

				found := false
				for _, f := range families {
					if f.GetName() == "custom_attr_batch_concurrency" {
						found = true
					}
				}
				So(found, ShouldBeTrue)
			})
		})
	})
}

package batch_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mktlab/attrib/internal/batch"
	"github.com/mktlab/attrib/internal/domain/model"
)

func resultWithSequence(value float64, touchTypes ...string) *model.AttributionResult {
	touches := make([]model.TouchAttribution, len(touchTypes))
	for i, tt := range touchTypes {
		touches[i] = model.TouchAttribution{Type: tt}
	}
	return &model.AttributionResult{
		TotalConversionValue: value,
		Touches:              touches,
	}
}

func TestTopConvertingSequences(t *testing.T) {
	Convey("Given ten converting results with two recurring sequences", t, func() {
		var results []*model.AttributionResult
		for i := 0; i < 6; i++ {
			results = append(results, resultWithSequence(100, "click", "impression"))
		}
		for i := 0; i < 4; i++ {
			results = append(results, resultWithSequence(50, "visit"))
		}

		Convey("When mining with a minimum of five occurrences", func() {
			stats := batch.TopConvertingSequences(results, 5)

			Convey("Then only the six-occurrence sequence survives", func() {
				So(stats, ShouldHaveLength, 1)
				So(stats[0].Sequence, ShouldEqual, "click > impression")
				So(stats[0].Occurrences, ShouldEqual, 6)
				So(stats[0].TotalRevenue, ShouldAlmostEqual, 600, 1e-9)
				So(stats[0].AvgRevenuePerConversion, ShouldAlmostEqual, 100, 1e-9)
			})
		})

		Convey("When mining with a minimum of one occurrence", func() {
			stats := batch.TopConvertingSequences(results, 1)

			Convey("Then sequences order by total revenue descending", func() {
				So(stats, ShouldHaveLength, 2)
				So(stats[0].Sequence, ShouldEqual, "click > impression")
				So(stats[1].Sequence, ShouldEqual, "visit")
				So(stats[1].TotalRevenue, ShouldAlmostEqual, 200, 1e-9)
			})
		})
	})

	Convey("Given non-converting and nil results", t, func() {
		results := []*model.AttributionResult{
			nil,
			resultWithSequence(0, "click"),
			resultWithSequence(80, "click"),
		}

		Convey("When mining", func() {
			stats := batch.TopConvertingSequences(results, 1)

			Convey("Then only converting results count", func() {
				So(stats, ShouldHaveLength, 1)
				So(stats[0].Occurrences, ShouldEqual, 1)
				So(stats[0].TotalRevenue, ShouldAlmostEqual, 80, 1e-9)
			})
		})
	})
}

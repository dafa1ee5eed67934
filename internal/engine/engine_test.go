package engine_test

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mktlab/attrib/internal/domain/model"
	"github.com/mktlab/attrib/internal/engine"
	"github.com/mktlab/attrib/internal/mlscorer"
)

func journeyFixture(value float64) model.CustomerJourney {
	return model.CustomerJourney{
		JourneyID:       "j-1",
		CustomerID:      "c-1",
		Converted:       true,
		ConversionValue: value,
	}
}

func touchFixture(id string, ts time.Time) model.AttributionTouch {
	return model.AttributionTouch{
		TouchID:   id,
		Timestamp: ts,
		Type:      "click",
		Source:    "google",
		Medium:    "cpc",
	}
}

func TestCalculateAttribution(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	Convey("Given an engine without a scorer", t, func() {
		eng := engine.New()

		Convey("When three touches convert for 100 under the linear model", func() {
			touches := []model.AttributionTouch{
				touchFixture("t0", base),
				touchFixture("t1", base.Add(24*time.Hour)),
				touchFixture("t2", base.Add(48*time.Hour)),
			}
			res, err := eng.CalculateAttribution(context.Background(), journeyFixture(100), touches, model.AttributionModel{ModelID: "m-lin", Type: model.Linear})

			Convey("Then each touch gets a third of weight and revenue", func() {
				So(err, ShouldBeNil)
				So(res.Touches, ShouldHaveLength, 3)
				for _, entry := range res.Touches {
					So(entry.Weight, ShouldAlmostEqual, 1.0/3.0, 1e-9)
					So(entry.Revenue, ShouldAlmostEqual, 100.0/3.0, 1e-6)
				}
				So(res.TotalAttributedValue, ShouldAlmostEqual, 100, 1e-6)
				So(res.TotalConversionValue, ShouldEqual, 100)
				So(res.ModelID, ShouldEqual, "m-lin")
			})
		})

		Convey("When a single touch converts under first-touch", func() {
			res, err := eng.CalculateAttribution(context.Background(), journeyFixture(250), []model.AttributionTouch{touchFixture("only", base)}, model.AttributionModel{Type: model.FirstTouch})

			Convey("Then it receives the whole conversion value", func() {
				So(err, ShouldBeNil)
				So(res.Touches, ShouldHaveLength, 1)
				So(res.Touches[0].Weight, ShouldEqual, 1.0)
				So(res.TotalAttributedValue, ShouldAlmostEqual, 250, 1e-6)
			})
		})

		Convey("When touches arrive out of order", func() {
			touches := []model.AttributionTouch{
				touchFixture("late", base.Add(48*time.Hour)),
				touchFixture("early", base),
			}
			res, err := eng.CalculateAttribution(context.Background(), journeyFixture(10), touches, model.AttributionModel{Type: model.FirstTouch})

			Convey("Then credit follows timestamp order, not input order", func() {
				So(err, ShouldBeNil)
				So(res.Touches[0].TouchID, ShouldEqual, "early")
				So(res.Touches[0].Weight, ShouldEqual, 1.0)
			})

			Convey("And the caller's slice is not reordered or written to", func() {
				So(touches[0].TouchID, ShouldEqual, "late")
			})
		})

		Convey("When a non-converted journey meets a require-conversion model", func() {
			journey := journeyFixture(0)
			journey.Converted = false
			res, err := eng.CalculateAttribution(context.Background(), journey, []model.AttributionTouch{touchFixture("t0", base)}, model.AttributionModel{Type: model.Linear, RequireConversion: true})

			Convey("Then an empty result is returned without error", func() {
				So(err, ShouldBeNil)
				So(res.TotalAttributedValue, ShouldEqual, 0)
				So(res.Confidence, ShouldEqual, 0)
				So(res.Touches, ShouldBeEmpty)
				So(res.ChannelAttribution, ShouldBeEmpty)
			})
		})

		Convey("When no touches are supplied", func() {
			_, err := eng.CalculateAttribution(context.Background(), journeyFixture(10), nil, model.AttributionModel{Type: model.Linear})

			Convey("Then the call fails loudly", func() {
				So(errors.Is(err, engine.ErrNoTouchpoints), ShouldBeTrue)
			})
		})

		Convey("When the model type is unknown", func() {
			_, err := eng.CalculateAttribution(context.Background(), journeyFixture(10), []model.AttributionTouch{touchFixture("t0", base)}, model.AttributionModel{Type: "bogus"})

			Convey("Then the call fails loudly", func() {
				So(errors.Is(err, engine.ErrUnsupportedModel), ShouldBeTrue)
			})
		})

		Convey("When a touch has no timestamp", func() {
			_, err := eng.CalculateAttribution(context.Background(), journeyFixture(10), []model.AttributionTouch{{TouchID: "broken"}}, model.AttributionModel{Type: model.Linear})

			Convey("Then validation fails loudly", func() {
				So(errors.Is(err, model.ErrMissingTimestamp), ShouldBeTrue)
			})
		})

		Convey("When the journey has a negative conversion value", func() {
			_, err := eng.CalculateAttribution(context.Background(), journeyFixture(-5), []model.AttributionTouch{touchFixture("t0", base)}, model.AttributionModel{Type: model.Linear})

			Convey("Then validation fails loudly", func() {
				So(errors.Is(err, model.ErrNegativeConversionValue), ShouldBeTrue)
			})
		})

		Convey("When a data-driven model runs without a scorer", func() {
			touches := []model.AttributionTouch{
				touchFixture("t0", base),
				touchFixture("t1", base.Add(time.Hour)),
			}
			res, err := eng.CalculateAttribution(context.Background(), journeyFixture(100), touches, model.AttributionModel{Type: model.DataDriven})

			Convey("Then it degrades to linear weights", func() {
				So(err, ShouldBeNil)
				So(res.Touches[0].Weight, ShouldAlmostEqual, 0.5, 1e-12)
				So(res.Touches[1].Weight, ShouldAlmostEqual, 0.5, 1e-12)
			})
		})
	})

	Convey("Given an engine whose scorer works", t, func() {
		eng := engine.New(engine.WithScorer(mlscorer.NewStaticScorer([]float64{1, 3})))

		Convey("When a data-driven model runs", func() {
			touches := []model.AttributionTouch{
				touchFixture("t0", base),
				touchFixture("t1", base.Add(time.Hour)),
			}
			res, err := eng.CalculateAttribution(context.Background(), journeyFixture(100), touches, model.AttributionModel{Type: model.DataDriven})

			Convey("Then the scorer's normalized scores become weights", func() {
				So(err, ShouldBeNil)
				So(res.Touches[0].Weight, ShouldAlmostEqual, 0.25, 1e-12)
				So(res.Touches[1].Weight, ShouldAlmostEqual, 0.75, 1e-12)
			})
		})
	})

	Convey("Given an engine whose scorer always fails", t, func() {
		eng := engine.New(engine.WithScorer(mlscorer.NewFailingScorer(errors.New("model server down"))))

		Convey("When a data-driven model runs over a 7-day spread", func() {
			touches := []model.AttributionTouch{
				touchFixture("t0", base),
				touchFixture("t1", base.Add(7*24*time.Hour)),
			}
			res, err := eng.CalculateAttribution(context.Background(), journeyFixture(100), touches, model.AttributionModel{Type: model.DataDriven})

			Convey("Then the failure is recovered with 7-day time-decay weights", func() {
				So(err, ShouldBeNil)
				So(res.Touches[0].Weight, ShouldAlmostEqual, 0.5/1.5, 1e-12)
				So(res.Touches[1].Weight, ShouldAlmostEqual, 1.0/1.5, 1e-12)
			})
		})
	})
}

func TestRevenueRoundTrip(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	Convey("Given every model whose weights sum to 1", t, func() {
		eng := engine.New(engine.WithScorer(mlscorer.NewStaticScorer([]float64{2, 5, 1})))
		touches := []model.AttributionTouch{
			touchFixture("t0", base),
			touchFixture("t1", base.Add(30*time.Hour)),
			touchFixture("t2", base.Add(60*time.Hour)),
		}

		for _, m := range []model.AttributionModel{
			{Type: model.FirstTouch},
			{Type: model.LastTouch},
			{Type: model.Linear},
			{Type: model.TimeDecay, HalfLifeDays: 7},
			{Type: model.PositionBased, FirstTouchWeight: 0.4, LastTouchWeight: 0.4},
			{Type: model.DataDriven},
			{Type: model.Custom, CustomWeights: map[string]float64{"click": 1.5}},
		} {
			Convey("When "+string(m.Type)+" attributes a 333.33 conversion", func() {
				res, err := eng.CalculateAttribution(context.Background(), journeyFixture(333.33), touches, m)

				Convey("Then attributed revenue round-trips the conversion value", func() {
					So(err, ShouldBeNil)
					So(res.TotalAttributedValue, ShouldAlmostEqual, 333.33, 1e-6)
				})
			})
		}
	})
}

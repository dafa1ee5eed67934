package batch

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mktlab/attrib/internal/domain/model"
	"github.com/mktlab/attrib/internal/domain/types"
	"github.com/mktlab/attrib/pkg/logger"
	"github.com/mktlab/attrib/pkg/metrics"
)

// CanonicalModels is the fixed battery the optimizer evaluates, in
// tie-breaking order: the first model to reach the best average score wins.
func CanonicalModels() []model.AttributionModel {
	return []model.AttributionModel{
		{ModelID: "canonical-first-touch", ModelName: "first_touch", Type: model.FirstTouch},
		{ModelID: "canonical-last-touch", ModelName: "last_touch", Type: model.LastTouch},
		{ModelID: "canonical-linear", ModelName: "linear", Type: model.Linear},
		{ModelID: "canonical-time-decay-7d", ModelName: "time_decay_7d", Type: model.TimeDecay, HalfLifeDays: 7},
		{ModelID: "canonical-time-decay-14d", ModelName: "time_decay_14d", Type: model.TimeDecay, HalfLifeDays: 14},
		{ModelID: "canonical-position-based", ModelName: "position_based_40_20_40", Type: model.PositionBased, FirstTouchWeight: 0.4, LastTouchWeight: 0.4},
	}
}

// OptimizeModel searches the canonical model battery for the configuration
// that best reproduces actual conversion revenue over the supplied
// historical journeys. Journeys without touches are skipped; a journey a
// model fails on scores 0 for that model. Remaining journeys are abandoned
// on context cancellation, and whatever was computed stays intact.
func (r *Runner) OptimizeModel(ctx context.Context, journeys []model.CustomerJourney, touchesByJourney map[string][]model.AttributionTouch) (types.BestModel, error) {
	start := time.Now()
	defer func() {
		metrics.RecordBatchDuration("optimize_model", float64(time.Since(start).Milliseconds()))
	}()

	evaluable := make([]model.CustomerJourney, 0, len(journeys))
	for _, j := range journeys {
		if len(touchesByJourney[j.JourneyID]) > 0 {
			evaluable = append(evaluable, j)
		}
	}
	if len(evaluable) == 0 {
		return types.BestModel{}, ErrNoEvaluableJourneys
	}

	best := types.BestModel{Score: -1}
	for _, candidate := range CanonicalModels() {
		if ctx.Err() != nil {
			break
		}
		avg := r.evaluateModel(ctx, candidate, evaluable, touchesByJourney)
		r.logger.Debug(ctx, "candidate model evaluated",
			logger.String("model", candidate.ModelName),
			logger.Float64("score", avg),
		)
		// Strict > keeps the first-encountered model on ties.
		if avg > best.Score {
			best = types.BestModel{Model: candidate, Score: avg, JourneysEvaluated: len(evaluable)}
		}
	}

	if err := ctx.Err(); err != nil && best.Score < 0 {
		return types.BestModel{}, err
	}
	return best, nil
}

// evaluateModel averages the per-journey validation score for one candidate
// across all evaluable journeys, in parallel.
func (r *Runner) evaluateModel(ctx context.Context, candidate model.AttributionModel, journeys []model.CustomerJourney, touchesByJourney map[string][]model.AttributionTouch) float64 {
	var (
		mu    sync.Mutex
		total float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for _, j := range journeys {
		j := j
		g.Go(func() error {
			metrics.RecordBatchUnit("optimize_model")
			score := r.journeyScore(gctx, candidate, j, touchesByJourney[j.JourneyID])
			mu.Lock()
			total += score
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return total / float64(len(journeys))
}

// journeyScore computes revenue accuracy for one journey under one model:
// max(0, 1 - |attributed - actual| / actual). A zero-revenue journey scores
// 1.0 when the model also attributes nothing, otherwise the result's
// confidence. A failed calculation scores 0.
func (r *Runner) journeyScore(ctx context.Context, candidate model.AttributionModel, journey model.CustomerJourney, touches []model.AttributionTouch) float64 {
	res, err := r.engine.CalculateAttribution(ctx, journey, touches, candidate)
	if err != nil {
		metrics.RecordBatchUnitError("optimize_model")
		r.logger.Warn(ctx, "candidate model failed on journey, scoring 0",
			logger.String("model", candidate.ModelName),
			logger.String("journeyID", journey.JourneyID),
			logger.Error(err),
		)
		return 0
	}

	actual := res.TotalConversionValue
	attributed := res.TotalAttributedValue
	if actual == 0 {
		if attributed == 0 {
			return 1.0
		}
		return res.Confidence
	}
	accuracy := 1.0 - math.Abs(attributed-actual)/actual
	if accuracy < 0 {
		return 0
	}
	return accuracy
}

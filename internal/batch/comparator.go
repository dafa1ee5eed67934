package batch

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mktlab/attrib/internal/domain/model"
	"github.com/mktlab/attrib/pkg/logger"
	"github.com/mktlab/attrib/pkg/metrics"
)

// CompareModels runs the same journey through every supplied model and
// returns the results keyed by model name. A model that fails contributes
// an empty result under its name instead of aborting the comparison.
func (r *Runner) CompareModels(ctx context.Context, journey model.CustomerJourney, touches []model.AttributionTouch, models []model.AttributionModel) map[string]*model.AttributionResult {
	start := time.Now()
	defer func() {
		metrics.RecordBatchDuration("compare_models", float64(time.Since(start).Milliseconds()))
	}()

	var mu sync.Mutex
	results := make(map[string]*model.AttributionResult, len(models))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for _, m := range models {
		m := m
		g.Go(func() error {
			metrics.RecordBatchUnit("compare_models")
			res, err := r.engine.CalculateAttribution(gctx, journey, touches, m)
			if err != nil {
				metrics.RecordBatchUnitError("compare_models")
				r.logger.Warn(gctx, "model failed during comparison, substituting empty result",
					logger.String("model", m.ModelName),
					logger.Error(err),
				)
				res = model.NewEmptyResult(journey, m)
			}
			mu.Lock()
			results[m.ModelName] = res
			mu.Unlock()
			return nil
		})
	}

	// Units never return errors, so Wait only reflects ctx cancellation;
	// either way the map holds everything that finished.
	_ = g.Wait()
	return results
}

package strategy

import (
	"context"
	"fmt"

	"github.com/mktlab/attrib/internal/domain/model"
	"github.com/mktlab/attrib/internal/mlscorer"
)

// DataDrivenStrategy delegates weighting to an external ML scorer and
// normalizes its per-touch scores. It never falls back itself: scorer
// failures are returned as errors so the engine can run its documented
// fallback chain.
type DataDrivenStrategy struct {
	scorer mlscorer.Scorer
}

// NewDataDriven creates a data-driven strategy backed by scorer.
func NewDataDriven(scorer mlscorer.Scorer) *DataDrivenStrategy {
	return &DataDrivenStrategy{scorer: scorer}
}

// Weights engineers journey-level features, asks the scorer for one score
// per touch, and normalizes by the sum. A missing scorer, a score count not
// matching the touch count, a negative score, or a zero score total are all
// reported as errors.
func (s *DataDrivenStrategy) Weights(ctx context.Context, journey model.CustomerJourney, touches []model.AttributionTouch, m model.AttributionModel) ([]float64, error) {
	n := len(touches)
	if n == 0 {
		return []float64{}, nil
	}
	if s.scorer == nil {
		return nil, ErrNoScorer
	}

	scores, err := s.scorer.Predict(ctx, Features(journey, touches), m.MLModelPath)
	if err != nil {
		return nil, fmt.Errorf("scorer predict: %w", err)
	}
	if len(scores) != n {
		return nil, fmt.Errorf("%w: got %d scores for %d touches", ErrScoreCountMismatch, len(scores), n)
	}
	for i, sc := range scores {
		if sc < 0 {
			return nil, fmt.Errorf("%w: score %f at index %d", ErrNegativeScore, sc, i)
		}
	}

	weights, ok := normalize(scores)
	if !ok {
		return nil, ErrZeroScoreTotal
	}
	return weights, nil
}

// Features builds the engineered feature map sent to the scorer: journey
// shape, touch mix, and diversity counts. Per-type counts are keyed
// "type_<touchpoint_type>".
func Features(journey model.CustomerJourney, touches []model.AttributionTouch) map[string]float64 {
	features := map[string]float64{
		"journey_length_days": journey.JourneyLengthDays,
		"touch_count":         float64(len(touches)),
		"conversion_value":    journey.ConversionValue,
	}

	sources := map[string]struct{}{}
	media := map[string]struct{}{}
	devices := map[string]struct{}{}
	for _, t := range touches {
		features["type_"+t.Type]++
		sources[t.Source] = struct{}{}
		media[t.Medium] = struct{}{}
		if t.DeviceCategory != "" {
			devices[t.DeviceCategory] = struct{}{}
		}
	}

	if n := len(touches); n > 0 {
		span := touches[n-1].Timestamp.Sub(touches[0].Timestamp)
		features["hours_first_to_last"] = span.Hours()
	}
	features["distinct_sources"] = float64(len(sources))
	features["distinct_media"] = float64(len(media))
	features["distinct_devices"] = float64(len(devices))

	return features
}

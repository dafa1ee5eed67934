// Package strategy defines the contract for computing attribution weights
// from an ordered touch sequence, with one implementation per model type.
//
// All strategies are pure: they read the journey, the timestamp-sorted
// touches, and the model parameters, and return one non-negative weight per
// touch index. They hold no mutable state, so any number of journeys can be
// weighted in parallel.
package strategy

import (
	"context"

	"github.com/mktlab/attrib/internal/domain/model"
)

// WeightStrategy computes one weight per touch, indexed in sorted order.
// For a non-empty input the weights sum to 1.0, except where a model's own
// documented convention says otherwise (position-based with two touches).
type WeightStrategy interface {
	Weights(ctx context.Context, journey model.CustomerJourney, touches []model.AttributionTouch, m model.AttributionModel) ([]float64, error)
}

// normalize divides each raw weight by the total. It reports false when the
// total is not positive, in which case the caller must fall back rather
// than emit NaN or all-zero weights.
func normalize(raw []float64) ([]float64, bool) {
	var total float64
	for _, w := range raw {
		total += w
	}
	if total <= 0 {
		return nil, false
	}
	out := make([]float64, len(raw))
	for i, w := range raw {
		out[i] = w / total
	}
	return out, true
}

package strategy

import (
	"context"

	"github.com/mktlab/attrib/internal/domain/model"
)

// CustomStrategy weights touches by a caller-supplied mapping from
// touchpoint type to raw weight.
type CustomStrategy struct{}

// NewCustom creates a custom-weights strategy.
func NewCustom() *CustomStrategy { return &CustomStrategy{} }

// Weights looks up each touch's type in the model's custom weights (missing
// types count as 0) and normalizes by the sum. When the mapping is empty or
// nothing matched, it degrades to equal linear shares instead of emitting
// zero or NaN weights.
func (s *CustomStrategy) Weights(ctx context.Context, journey model.CustomerJourney, touches []model.AttributionTouch, m model.AttributionModel) ([]float64, error) {
	n := len(touches)
	if n == 0 {
		return []float64{}, nil
	}

	raw := make([]float64, n)
	for i, t := range touches {
		raw[i] = m.CustomWeights[t.Type]
	}

	weights, ok := normalize(raw)
	if !ok {
		return NewLinear().Weights(ctx, journey, touches, m)
	}
	return weights, nil
}

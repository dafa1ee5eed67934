package strategy

import (
	"context"

	"github.com/mktlab/attrib/internal/domain/model"
)

// PositionBasedStrategy gives fixed shares to the first and last touches
// and splits the remainder evenly across the middle.
type PositionBasedStrategy struct {
	// defaultFirst and defaultLast apply per endpoint when the model
	// leaves that weight unset; zero means the 0.4 package default.
	defaultFirst float64
	defaultLast  float64
}

// PositionOption applies a configuration option to the
// PositionBasedStrategy.
type PositionOption func(*PositionBasedStrategy)

// WithPositionDefaults replaces the 0.4/0.4 fallback weights used for
// models that do not set their own endpoint weights. A non-positive value
// keeps the package default for that endpoint.
func WithPositionDefaults(first, last float64) PositionOption {
	return func(s *PositionBasedStrategy) {
		if first > 0 {
			s.defaultFirst = first
		}
		if last > 0 {
			s.defaultLast = last
		}
	}
}

// NewPositionBased creates a position-based strategy with configuration
// options.
func NewPositionBased(opts ...PositionOption) *PositionBasedStrategy {
	s := &PositionBasedStrategy{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// endpointWeights resolves each endpoint independently: the model's own
// weight wins, then the strategy default, then the 0.4 package default.
func (s *PositionBasedStrategy) endpointWeights(m model.AttributionModel) (first, last float64) {
	first, last = m.FirstTouchWeight, m.LastTouchWeight
	if first <= 0 {
		first = s.defaultFirst
	}
	if first <= 0 {
		first = model.DefaultPositionFirst
	}
	if last <= 0 {
		last = s.defaultLast
	}
	if last <= 0 {
		last = model.DefaultPositionLast
	}
	return first, last
}

// Weights assigns the configured first/last shares at the endpoints and
// (1 - first - last) / (n-2) to each middle touch. With exactly two touches
// the configured endpoint weights are used as-is; the middle-share formula
// is not applied and the weights are not rescaled to sum to 1.
func (s *PositionBasedStrategy) Weights(_ context.Context, _ model.CustomerJourney, touches []model.AttributionTouch, m model.AttributionModel) ([]float64, error) {
	n := len(touches)
	if n == 0 {
		return []float64{}, nil
	}
	if n == 1 {
		return []float64{1.0}, nil
	}

	first, last := s.endpointWeights(m)
	if n == 2 {
		return []float64{first, last}, nil
	}

	weights := make([]float64, n)
	weights[0] = first
	weights[n-1] = last
	middle := (1.0 - first - last) / float64(n-2)
	for i := 1; i < n-1; i++ {
		weights[i] = middle
	}
	return weights, nil
}

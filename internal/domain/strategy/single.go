package strategy

import (
	"context"

	"github.com/mktlab/attrib/internal/domain/model"
)

// FirstTouchStrategy gives the full credit to the earliest touch.
type FirstTouchStrategy struct{}

// NewFirstTouch creates a first-touch strategy.
func NewFirstTouch() *FirstTouchStrategy { return &FirstTouchStrategy{} }

// Weights assigns weight 1.0 to index 0 and 0 elsewhere.
func (s *FirstTouchStrategy) Weights(_ context.Context, _ model.CustomerJourney, touches []model.AttributionTouch, _ model.AttributionModel) ([]float64, error) {
	weights := make([]float64, len(touches))
	if len(weights) > 0 {
		weights[0] = 1.0
	}
	return weights, nil
}

// LastTouchStrategy gives the full credit to the latest touch.
type LastTouchStrategy struct{}

// NewLastTouch creates a last-touch strategy.
func NewLastTouch() *LastTouchStrategy { return &LastTouchStrategy{} }

// Weights assigns weight 1.0 to the last index and 0 elsewhere.
func (s *LastTouchStrategy) Weights(_ context.Context, _ model.CustomerJourney, touches []model.AttributionTouch, _ model.AttributionModel) ([]float64, error) {
	weights := make([]float64, len(touches))
	if len(weights) > 0 {
		weights[len(weights)-1] = 1.0
	}
	return weights, nil
}

// LinearStrategy spreads the credit evenly across all touches. It also
// serves as the fallback whenever another strategy's normalization total is
// zero or the external scorer is not configured.
type LinearStrategy struct{}

// NewLinear creates a linear strategy.
func NewLinear() *LinearStrategy { return &LinearStrategy{} }

// Weights assigns 1/n to every index.
func (s *LinearStrategy) Weights(_ context.Context, _ model.CustomerJourney, touches []model.AttributionTouch, _ model.AttributionModel) ([]float64, error) {
	n := len(touches)
	weights := make([]float64, n)
	if n == 0 {
		return weights, nil
	}
	share := 1.0 / float64(n)
	for i := range weights {
		weights[i] = share
	}
	return weights, nil
}

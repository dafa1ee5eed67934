// Package mlscorer defines the contract for the external machine-learning
// scorer consumed by the data-driven attribution model, plus a JSON-over-HTTP
// client and a static implementation for tests.
//
// The scorer is an external service: this package only speaks its wire
// contract. Any transport error, timeout, or malformed response surfaces as
// an error that the engine recovers from via its fallback chain; nothing
// here retries.
package mlscorer

import "context"

// Scorer returns one non-negative score per touch, in the same order as the
// timestamp-sorted touches the features were engineered from. A response
// whose length does not match the touch count is treated as a failure by
// the caller.
type Scorer interface {
	Predict(ctx context.Context, features map[string]float64, modelRef string) ([]float64, error)
}

// ScoreFunc adapts a plain function to the Scorer interface.
type ScoreFunc func(ctx context.Context, features map[string]float64, modelRef string) ([]float64, error)

// Predict calls the wrapped function.
func (f ScoreFunc) Predict(ctx context.Context, features map[string]float64, modelRef string) ([]float64, error) {
	return f(ctx, features, modelRef)
}

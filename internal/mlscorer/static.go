package mlscorer

import "context"

// StaticScorer returns a fixed score slice on every call. Useful for tests
// and for wiring a degenerate scorer into local tooling.
type StaticScorer struct {
	scores []float64
	err    error
}

// NewStaticScorer creates a scorer that always returns scores.
func NewStaticScorer(scores []float64) *StaticScorer {
	return &StaticScorer{scores: scores}
}

// NewFailingScorer creates a scorer that always returns err.
func NewFailingScorer(err error) *StaticScorer {
	return &StaticScorer{err: err}
}

// Predict returns the configured scores or error, honoring ctx cancellation.
func (s *StaticScorer) Predict(ctx context.Context, _ map[string]float64, _ string) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	out := make([]float64, len(s.scores))
	copy(out, s.scores)
	return out, nil
}

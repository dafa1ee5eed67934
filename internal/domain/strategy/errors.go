package strategy

import "errors"

// Sentinel kinds for data-driven scoring failures. The engine matches these
// with errors.Is to drive its fallback chain.
var (
	ErrNoScorer           = errors.New("no scorer configured")
	ErrScoreCountMismatch = errors.New("score count does not match touch count")
	ErrNegativeScore      = errors.New("scorer returned a negative score")
	ErrZeroScoreTotal     = errors.New("scorer returned all-zero scores")
)

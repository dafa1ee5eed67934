package batch

import "errors"

// Sentinel kinds for batch operations.
var (
	ErrNoEvaluableJourneys = errors.New("no journeys with touches to evaluate")
)

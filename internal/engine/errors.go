package engine

import "errors"

// Sentinel kinds for caller contract violations. These fail loudly from
// CalculateAttribution; batch operations catch them per unit instead.
var (
	ErrNoTouchpoints    = errors.New("no touchpoints provided")
	ErrUnsupportedModel = errors.New("unsupported attribution model type")
)

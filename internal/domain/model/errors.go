package model

import "errors"

// Sentinel kinds for input validation. These allow errors.Is from callers.
var (
	ErrMissingTimestamp        = errors.New("touch has no timestamp")
	ErrNegativeConversionValue = errors.New("conversion value must not be negative")
)

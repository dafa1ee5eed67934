package mlscorer

import "errors"

// Sentinel kinds for scorer construction and responses.
var (
	ErrNoEndpoint = errors.New("scorer endpoint must not be empty")
)

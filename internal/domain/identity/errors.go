package identity

import "errors"

// Sentinel kinds for identity resolution errors.
var (
	ErrUnknownPolicy = errors.New("unknown club policy")
)

package samplegen

import "errors"

// ErrInvalidConfig reports an unusable generation configuration.
var ErrInvalidConfig = errors.New("invalid generator config")

package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNoSource    = errors.New("no dataset source configured")
	ErrNotReady    = errors.New("analytics not computed yet")
	ErrUnknownYear = errors.New("year not among the analyzed editions")
)

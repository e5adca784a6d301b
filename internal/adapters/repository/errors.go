package repository

import "errors"

// Sentinel kinds for dataset source errors. A missing edition is reported
// with model.ErrYearMissing.
var (
	ErrDecode       = errors.New("decode result set")
	ErrYearMismatch = errors.New("record year does not match edition")
	ErrClosed       = errors.New("store closed")
)

package model

import "errors"

// Sentinel kinds for dataset errors.
var (
	ErrYearMissing  = errors.New("year dataset missing")
	ErrEmptyDataset = errors.New("year dataset is empty")
	ErrMissingField = errors.New("required field absent from year dataset")
	ErrYearOrder    = errors.New("years must be strictly ascending")
)

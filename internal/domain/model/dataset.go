package model

import (
	"context"
	"fmt"
)

// Dataset is the normalized input of a run: one record collection per
// edition, keyed by year. Years is the processing order and is strictly
// ascending; order-dependent components iterate Years, never the map.
type Dataset struct {
	Years   []int
	Records map[int][]Normalized
}

// Editions returns the number of supplied years.
func (d Dataset) Editions() int { return len(d.Years) }

// FirstYear returns the earliest edition, or 0 for an empty dataset.
func (d Dataset) FirstYear() int {
	if len(d.Years) == 0 {
		return 0
	}
	return d.Years[0]
}

// LastYear returns the latest edition, or 0 for an empty dataset.
func (d Dataset) LastYear() int {
	if len(d.Years) == 0 {
		return 0
	}
	return d.Years[len(d.Years)-1]
}

// Source supplies the raw records of a single edition.
type Source interface {
	// Load returns the records for year, or an error wrapping
	// ErrYearMissing when the edition is not available.
	Load(ctx context.Context, year int) ([]YearlyResultRecord, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context, year int) ([]YearlyResultRecord, error)

// Load calls f(ctx, year).
func (f SourceFunc) Load(ctx context.Context, year int) ([]YearlyResultRecord, error) {
	return f(ctx, year)
}

// ValidateYears checks that years is non-empty and strictly ascending.
func ValidateYears(years []int) error {
	if len(years) == 0 {
		return fmt.Errorf("%w: no years configured", ErrYearOrder)
	}
	for i := 1; i < len(years); i++ {
		if years[i] <= years[i-1] {
			return fmt.Errorf("%w: %d follows %d", ErrYearOrder, years[i], years[i-1])
		}
	}
	return nil
}

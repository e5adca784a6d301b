// Package repository provides the dataset sources yearly result sets are
// loaded from and imported into.
package repository

import (
	"context"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"
)

// Source kinds accepted by configuration.
const (
	KindFile   = "file"
	KindSQLite = "sqlite"
	KindMemory = "memory"
)

// Store is a dataset source that can also list and persist editions.
type Store interface {
	model.Source

	// Years lists the editions present in the store, ascending.
	Years(ctx context.Context) ([]int, error)

	// Save replaces the records of year.
	Save(ctx context.Context, year int, recs []model.YearlyResultRecord) error

	// Kind names the backing store for logs and metrics.
	Kind() string
}

// stamp returns a copy of recs with Year set where the source left it
// zero.
func stamp(year int, recs []model.YearlyResultRecord) []model.YearlyResultRecord {
	out := make([]model.YearlyResultRecord, len(recs))
	for i, r := range recs {
		if r.Year == 0 {
			r.Year = year
		}
		out[i] = r
	}
	return out
}

package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"
)

// MemorySource keeps result sets in memory. Loaded slices are copies.
type MemorySource struct {
	mu    sync.RWMutex
	years map[int][]model.YearlyResultRecord
}

// NewMemorySource creates a MemorySource seeded with sets.
func NewMemorySource(sets map[int][]model.YearlyResultRecord) *MemorySource {
	m := &MemorySource{years: make(map[int][]model.YearlyResultRecord, len(sets))}
	for y, recs := range sets {
		m.years[y] = stamp(y, recs)
	}
	return m
}

// Kind implements Store.
func (m *MemorySource) Kind() string { return KindMemory }

// Load implements model.Source.
func (m *MemorySource) Load(ctx context.Context, year int) ([]model.YearlyResultRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	recs, ok := m.years[year]
	if !ok {
		return nil, fmt.Errorf("%w: %d", model.ErrYearMissing, year)
	}
	return append([]model.YearlyResultRecord(nil), recs...), nil
}

// Save implements Store.
func (m *MemorySource) Save(ctx context.Context, year int, recs []model.YearlyResultRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.years[year] = stamp(year, recs)
	return nil
}

// Years implements Store.
func (m *MemorySource) Years(ctx context.Context) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]int, 0, len(m.years))
	for y := range m.years {
		out = append(out, y)
	}
	sort.Ints(out)
	return out, nil
}

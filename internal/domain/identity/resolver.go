package identity

import (
	"fmt"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/dedupe"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"
)

// Resolver groups finish records into participants. It walks the
// editions in the ascending order it was constructed with; last-known
// club and chronological classification depend on that order.
type Resolver struct {
	years  []int
	policy ClubPolicy
}

// NewResolver creates a Resolver for an ascending year sequence.
func NewResolver(years []int, opts ...Option) (*Resolver, error) {
	if err := model.ValidateYears(years); err != nil {
		return nil, err
	}
	r := &Resolver{
		years:  append([]int(nil), years...),
		policy: ClubPolicySingle,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Resolve builds the identity graph from ds. Every year of the resolver's
// sequence must be present in ds.
func (r *Resolver) Resolve(ds model.Dataset) (*Identities, error) {
	ids := &Identities{
		years:     r.years,
		policy:    r.policy,
		byKey:     make(map[string]*Participant),
		order:     dedupe.New(),
		finishers: make(map[int]*dedupe.Set, len(r.years)),
	}

	for _, year := range r.years {
		recs, ok := ds.Records[year]
		if !ok {
			return nil, fmt.Errorf("resolve %d: %w", year, model.ErrYearMissing)
		}
		seen := dedupe.New(dedupe.WithCapacity(len(recs)))
		for _, n := range recs {
			if !n.Finished() || n.NameKey == "" {
				continue
			}
			p := ids.upsert(n)
			p.record(year, n)
			seen.SeenAndRecord(n.NameKey)
		}
		ids.finishers[year] = seen
	}

	return ids, nil
}

// Identities is the resolved participant graph of a run.
type Identities struct {
	years     []int
	policy    ClubPolicy
	byKey     map[string]*Participant
	order     *dedupe.Set
	finishers map[int]*dedupe.Set
}

func (ids *Identities) upsert(n model.Normalized) *Participant {
	if p, ok := ids.byKey[n.NameKey]; ok {
		return p
	}
	p := &Participant{
		Key:         n.NameKey,
		DisplayName: n.DisplayName,
		Finishes:    make(map[int]*YearEntry),
	}
	ids.byKey[n.NameKey] = p
	ids.order.SeenAndRecord(n.NameKey)
	return p
}

// Years returns the processed editions, ascending.
func (ids *Identities) Years() []int { return append([]int(nil), ids.years...) }

// Editions returns the number of processed editions.
func (ids *Identities) Editions() int { return len(ids.years) }

// Policy returns the club-per-year policy used by the run.
func (ids *Identities) Policy() ClubPolicy { return ids.policy }

// Len returns the number of resolved participants.
func (ids *Identities) Len() int { return ids.order.Size() }

// Get returns the participant for a normalized name key.
func (ids *Identities) Get(key string) (*Participant, bool) {
	p, ok := ids.byKey[key]
	return p, ok
}

// Participants returns all participants in first-discovered order.
func (ids *Identities) Participants() []*Participant {
	return ids.lookup(ids.order.Keys())
}

// FinishersIn returns the participants who finished in year, in order of
// first appearance in that year's records.
func (ids *Identities) FinishersIn(year int) []*Participant {
	s, ok := ids.finishers[year]
	if !ok {
		return nil
	}
	return ids.lookup(s.Keys())
}

// FinisherCount returns the number of unique participants who finished in year.
func (ids *Identities) FinisherCount(year int) int {
	if s, ok := ids.finishers[year]; ok {
		return s.Size()
	}
	return 0
}

func (ids *Identities) lookup(keys []string) []*Participant {
	out := make([]*Participant, 0, len(keys))
	for _, k := range keys {
		out = append(out, ids.byKey[k])
	}
	return out
}

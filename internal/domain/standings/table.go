// Package standings tallies unique finishers per club and per distance
// for every edition and ranks them.
package standings

import (
	"sort"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/dedupe"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"
)

// Row is one ranked line of a standings table.
type Row struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
	Men   int    `json:"men"`
	Women int    `json:"women"`
}

type bucket struct {
	row    Row
	people *dedupe.Set
}

// Table tallies one edition. Keys are ranked by total, ties keep the
// order in which they were first discovered.
type Table struct {
	Year int

	buckets map[string]*bucket
	order   []string
}

func newTable(year int) *Table {
	return &Table{Year: year, buckets: make(map[string]*bucket)}
}

// discover registers name with a zero tally if it is new.
func (t *Table) discover(name string) *bucket {
	if b, ok := t.buckets[name]; ok {
		return b
	}
	b := &bucket{row: Row{Name: name}, people: dedupe.New()}
	t.buckets[name] = b
	t.order = append(t.order, name)
	return b
}

// add counts person under name once per table.
func (t *Table) add(name, person string, g model.Gender) {
	b := t.discover(name)
	if b.people.SeenAndRecord(person) {
		return
	}
	b.row.Total++
	switch g {
	case model.GenderMale:
		b.row.Men++
	case model.GenderFemale:
		b.row.Women++
	}
}

// Seen reports whether name was discovered in this edition.
func (t *Table) Seen(name string) bool {
	_, ok := t.buckets[name]
	return ok
}

// Count returns the unique finisher count of name, 0 when absent.
func (t *Table) Count(name string) int {
	if b, ok := t.buckets[name]; ok {
		return b.row.Total
	}
	return 0
}

// Row returns the tally of name.
func (t *Table) Row(name string) (Row, bool) {
	b, ok := t.buckets[name]
	if !ok {
		return Row{}, false
	}
	return b.row, true
}

// Len returns the number of discovered keys, including zero tallies.
func (t *Table) Len() int { return len(t.order) }

// Ranked returns every key with at least one finisher, by total
// descending and discovery order on ties.
func (t *Table) Ranked() []Row {
	out := make([]Row, 0, len(t.order))
	for _, name := range t.order {
		if r := t.buckets[name].row; r.Total > 0 {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

// Top returns the first n ranked rows.
func (t *Table) Top(n int) []Row {
	return TopN(t.Ranked(), n)
}

// TopN slices a ranked list to at most n rows. n <= 0 yields an empty list.
func TopN(ranked []Row, n int) []Row {
	if n <= 0 {
		return []Row{}
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

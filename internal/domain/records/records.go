// Package records tracks the fastest finish per distance and gender, per
// edition and across all editions.
package records

import (
	"sort"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"
)

// Mark is a single best result. Club is the club attached to the result
// itself, never a later affiliation of the runner.
type Mark struct {
	Name        string `json:"name"`
	TimeSeconds int    `json:"time_seconds"`
	Year        int    `json:"year"`
	Club        string `json:"club,omitempty"`
}

// Entry is the record book of one distance and gender.
type Entry struct {
	Distance string       `json:"distance"`
	Gender   model.Gender `json:"gender"`
	AllTime  Mark         `json:"all_time"`
	ByYear   []Mark       `json:"by_year"`

	byYear map[int]*Mark
}

// Best returns the best mark of year.
func (e *Entry) Best(year int) (Mark, bool) {
	m, ok := e.byYear[year]
	if !ok {
		return Mark{}, false
	}
	return *m, true
}

type key struct {
	distance string
	gender   model.Gender
}

// Book is the full set of entries of a run.
type Book struct {
	entries map[key]*Entry
}

// Build scans ds in ascending year order. Only results carrying a
// distance, a gender and a finish time are eligible. Comparison is strict,
// so on equal times the result seen first keeps the record.
func Build(ds model.Dataset) *Book {
	b := &Book{entries: make(map[key]*Entry)}
	for _, year := range ds.Years {
		for _, n := range ds.Records[year] {
			if !n.Finished() || n.Distance == "" || n.Gender == model.GenderUnknown {
				continue
			}
			b.observe(year, n)
		}
	}
	return b
}

func (b *Book) observe(year int, n model.Normalized) {
	k := key{distance: n.Distance, gender: n.Gender}
	m := Mark{Name: n.DisplayName, TimeSeconds: n.Time(), Year: year, Club: n.Club}

	e, ok := b.entries[k]
	if !ok {
		e = &Entry{Distance: n.Distance, Gender: n.Gender, AllTime: m, byYear: make(map[int]*Mark)}
		b.entries[k] = e
	} else if m.TimeSeconds < e.AllTime.TimeSeconds {
		e.AllTime = m
	}

	cur, ok := e.byYear[year]
	if !ok {
		mm := m
		e.byYear[year] = &mm
		e.ByYear = append(e.ByYear, mm)
		return
	}
	if m.TimeSeconds < cur.TimeSeconds {
		*cur = m
		e.ByYear[len(e.ByYear)-1] = m
	}
}

// Get returns the entry of distance and gender.
func (b *Book) Get(distance string, gender model.Gender) (*Entry, bool) {
	e, ok := b.entries[key{distance: distance, gender: gender}]
	return e, ok
}

// Len returns the number of (distance, gender) entries.
func (b *Book) Len() int { return len(b.entries) }

// Entries returns every entry ordered by distance, then men before women.
func (b *Book) Entries() []*Entry {
	out := make([]*Entry, 0, len(b.entries))
	for _, e := range b.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Gender > out[j].Gender
	})
	return out
}

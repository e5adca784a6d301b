package standings

import (
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/dedupe"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/growth"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/identity"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"
)

// Standings holds one Table per edition.
type Standings struct {
	years     []int
	tables    map[int]*Table
	seen      *dedupe.Set
	firstYear map[string]int
}

func newStandings(years []int) *Standings {
	return &Standings{
		years:     years,
		tables:    make(map[int]*Table, len(years)),
		seen:      dedupe.New(),
		firstYear: make(map[string]int),
	}
}

func (s *Standings) discover(t *Table, name string) {
	t.discover(name)
	if !s.seen.SeenAndRecord(name) {
		s.firstYear[name] = t.Year
	}
}

// Years returns the editions covered, ascending.
func (s *Standings) Years() []int { return append([]int(nil), s.years...) }

// Table returns the tally of year, or nil.
func (s *Standings) Table(year int) *Table { return s.tables[year] }

// Trend is the first-seen versus final-edition comparison of one key.
type Trend struct {
	Name      string `json:"name"`
	FirstYear int    `json:"first_year"`
	growth.Metric
}

// Trends compares every key's count in the first edition it was seen in
// with its count in the final edition. Keys are in discovery order. A key
// seen first in an edition where it had no finishers has an undefined
// growth percent.
func (s *Standings) Trends() []Trend {
	out := make([]Trend, 0, s.seen.Size())
	if len(s.years) == 0 {
		return out
	}
	last := s.tables[s.years[len(s.years)-1]]
	for _, name := range s.seen.Keys() {
		first := s.firstYear[name]
		out = append(out, Trend{
			Name:      name,
			FirstYear: first,
			Metric:    growth.Compute(s.tables[first].Count(name), last.Count(name)),
		})
	}
	return out
}

// Clubs tallies unique finishers per club. A club is discovered from any
// registration record of the edition, finisher or not; finishers count
// toward the clubs selected by the identities' club policy.
func Clubs(ds model.Dataset, ids *identity.Identities) *Standings {
	s := newStandings(ds.Years)
	for _, year := range ds.Years {
		t := newTable(year)
		for _, n := range ds.Records[year] {
			if n.Club != "" {
				s.discover(t, n.Club)
			}
		}
		for _, p := range ids.FinishersIn(year) {
			for _, club := range p.ClubsIn(year, ids.Policy()) {
				s.discover(t, club)
				t.add(club, p.Key, genderIn(p, year))
			}
		}
		s.tables[year] = t
	}
	return s
}

// Distances tallies unique finishers per canonical distance. A person who
// finished two distances in one edition counts once in each.
func Distances(ds model.Dataset, ids *identity.Identities) *Standings {
	s := newStandings(ds.Years)
	for _, year := range ds.Years {
		t := newTable(year)
		for _, n := range ds.Records[year] {
			if n.Distance != "" {
				s.discover(t, n.Distance)
			}
		}
		for _, p := range ids.FinishersIn(year) {
			for _, d := range p.Finishes[year].Distances {
				s.discover(t, d)
				t.add(d, p.Key, genderIn(p, year))
			}
		}
		s.tables[year] = t
	}
	return s
}

// genderIn prefers the gender recorded for the edition and falls back to
// the participant's last known gender.
func genderIn(p *identity.Participant, year int) model.Gender {
	if e, ok := p.Finishes[year]; ok && e.Gender != model.GenderUnknown {
		return e.Gender
	}
	return p.Gender
}

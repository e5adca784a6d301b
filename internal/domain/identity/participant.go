// Package identity resolves yearly finish records into multi-year
// participants keyed by normalized name.
//
// Two different people sharing a normalized name are merged into one
// participant. No heuristic tries to split them.
package identity

import (
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"
)

// YearEntry is what a participant retained for one edition. When several
// finish records match the same person in a year, the last one processed
// sets the scalar fields; Clubs and Distances collect every distinct value.
type YearEntry struct {
	TimeSeconds int
	Distance    string
	Category    string
	Gender      model.Gender
	Club        string
	Clubs       []string
	Distances   []string
	Records     int
}

// Participant is one resolved identity across editions.
type Participant struct {
	Key           string
	DisplayName   string
	Gender        model.Gender
	LastKnownClub string
	Finishes      map[int]*YearEntry

	years []int
}

// Years returns the editions the participant finished, ascending.
func (p *Participant) Years() []int {
	out := make([]int, len(p.years))
	copy(out, p.years)
	return out
}

// YearCount returns the number of distinct editions finished.
func (p *Participant) YearCount() int { return len(p.years) }

// FinishedIn reports whether the participant finished in year.
func (p *Participant) FinishedIn(year int) bool {
	_, ok := p.Finishes[year]
	return ok
}

// ClubsIn returns the clubs the participant counts for in year under
// policy. It is empty when no club is known for that year.
func (p *Participant) ClubsIn(year int, policy ClubPolicy) []string {
	e, ok := p.Finishes[year]
	if !ok {
		return nil
	}
	if policy == ClubPolicyAll {
		return e.Clubs
	}
	if e.Club == "" {
		return nil
	}
	return []string{e.Club}
}

func (p *Participant) record(year int, n model.Normalized) {
	e, ok := p.Finishes[year]
	if !ok {
		e = &YearEntry{}
		p.Finishes[year] = e
		p.years = append(p.years, year)
	}
	e.Records++
	e.TimeSeconds = n.Time()
	e.Distance = n.Distance
	e.Category = n.Record.Category
	e.Gender = n.Gender
	if n.Club != "" {
		e.Club = n.Club
		e.Clubs = appendUnique(e.Clubs, n.Club)
		// Ascending processing makes the latest year with a club win.
		p.LastKnownClub = n.Club
	}
	if n.Distance != "" {
		e.Distances = appendUnique(e.Distances, n.Distance)
	}
	if n.Gender != model.GenderUnknown {
		p.Gender = n.Gender
	}
}

func appendUnique(list []string, v string) []string {
	for _, s := range list {
		if s == v {
			return list
		}
	}
	return append(list, v)
}

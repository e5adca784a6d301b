// Package types contains the analytics result shared with report emitters
// and the HTTP layer.
package types

import (
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/demographics"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/growth"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/records"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/standings"
)

// Analytics is the complete result of one run.
type Analytics struct {
	Meta         Meta                         `json:"meta"`
	Growth       Growth                       `json:"growth"`
	Participants Participants                 `json:"participants"`
	Clubs        Standings                    `json:"clubs"`
	Distances    Standings                    `json:"distances"`
	Records      []*records.Entry             `json:"records"`
	Demographics []demographics.YearAges      `json:"demographics"`
	Geography    []demographics.YearGeography `json:"geography"`
	GenderTrend  GenderTrend                  `json:"gender_trend"`
}

// Meta describes the input of a run.
type Meta struct {
	Years       []int  `json:"years"`
	Editions    int    `json:"editions"`
	DatasetID   string `json:"dataset_id"`
	HomeCountry string `json:"home_country"`
	ClubPolicy  string `json:"club_policy"`
}

// YearCounts are the headline counts of one edition.
type YearCounts struct {
	Year               int `json:"year"`
	Registered         int `json:"registered"`
	Finished           int `json:"finished"`
	UniqueParticipants int `json:"unique_participants"`
}

// Growth is the participation summary. The series compares unique
// participants.
type Growth struct {
	PerYear []YearCounts `json:"per_year"`
	growth.Series
}

// Veteran is a participant who finished every edition.
type Veteran struct {
	Name          string `json:"name"`
	Years         []int  `json:"years"`
	LastKnownClub string `json:"last_known_club"`
}

// YearCount pairs an edition with a count.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// YearSplit is the chronological newcomer/returning split of one edition.
type YearSplit struct {
	Year      int `json:"year"`
	Newcomers int `json:"newcomers"`
	Returning int `json:"returning"`
}

// Participants summarizes resolved identities. VeteranCounts is keyed by
// the number of editions finished.
type Participants struct {
	Total             int            `json:"total"`
	VeteranCounts     map[string]int `json:"veteran_counts"`
	FullVeterans      []Veteran      `json:"full_veterans"`
	LifetimeReturning []YearCount    `json:"lifetime_returning"`
	Chronological     []YearSplit    `json:"chronological"`
}

// YearStandings is the ranked table of one edition.
type YearStandings struct {
	Year      int             `json:"year"`
	Standings []standings.Row `json:"standings"`
}

// Standings holds ranked tables per edition plus growth per key.
type Standings struct {
	PerYear []YearStandings   `json:"per_year"`
	Trends  []standings.Trend `json:"trends"`
}

// Year returns the table of year.
func (s Standings) Year(year int) ([]standings.Row, bool) {
	for _, ys := range s.PerYear {
		if ys.Year == year {
			return ys.Standings, true
		}
	}
	return nil, false
}

// GenderTrend tracks finishers by gender over the editions.
type GenderTrend struct {
	PerYear []demographics.GenderCount `json:"per_year"`
	Men     growth.Series              `json:"men"`
	Women   growth.Series              `json:"women"`
}

// FinalYear returns the last edition of the run, or 0 when empty.
func (a *Analytics) FinalYear() int {
	if len(a.Meta.Years) == 0 {
		return 0
	}
	return a.Meta.Years[len(a.Meta.Years)-1]
}

// YearCounts returns the headline counts of year.
func (a *Analytics) YearCounts(year int) (YearCounts, bool) {
	for _, yc := range a.Growth.PerYear {
		if yc.Year == year {
			return yc, true
		}
	}
	return YearCounts{}, false
}

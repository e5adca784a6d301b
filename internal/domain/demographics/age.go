// Package demographics derives age, geography and gender breakdowns from
// the finishers of each edition. Nothing here needs resolved identities.
package demographics

import (
	"sort"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/growth"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"
)

// Plausible age range. Ages outside it are dropped from age aggregates.
const (
	MinAge = 0
	MaxAge = 120
)

type bandDef struct {
	label    string
	min, max int
}

var bandDefs = []bandDef{ //nolint:gochecknoglobals // fixed band table
	{label: "<18", min: MinAge, max: 17},
	{label: "18-29", min: 18, max: 29},
	{label: "30-39", min: 30, max: 39},
	{label: "40-49", min: 40, max: 49},
	{label: "50-59", min: 50, max: 59},
	{label: "60+", min: 60, max: MaxAge},
}

// BandCount is the number of finishers in one age band.
type BandCount struct {
	Band  string `json:"band"`
	Count int    `json:"count"`
}

// AgeStats summarizes the ages of one edition.
type AgeStats struct {
	Count    int     `json:"count"`
	Youngest int     `json:"youngest"`
	Oldest   int     `json:"oldest"`
	Average  float64 `json:"average"`
	Median   int     `json:"median"`
}

// YearAges is the age profile of one edition. Age is nil when no finisher
// has a usable birth year.
type YearAges struct {
	Year      int         `json:"year"`
	Finishers int         `json:"finishers"`
	Age       *AgeStats   `json:"age"`
	Bands     []BandCount `json:"bands"`

	// Excluded counts finishers whose computed age fell outside the
	// plausible range.
	Excluded int `json:"-"`
}

// Band returns the label of the band holding age, or "" when age is out
// of range.
func Band(age int) string {
	for _, b := range bandDefs {
		if age >= b.min && age <= b.max {
			return b.label
		}
	}
	return ""
}

// Median returns the element at index n/2 of an ascending slice. For an
// even count that is the upper middle value; nothing is averaged.
func Median(sorted []int) (int, bool) {
	if len(sorted) == 0 {
		return 0, false
	}
	return sorted[len(sorted)/2], true
}

// Summarize computes AgeStats over ages in any order. It returns nil for
// an empty list.
func Summarize(ages []int) *AgeStats {
	if len(ages) == 0 {
		return nil
	}
	sorted := append([]int(nil), ages...)
	sort.Ints(sorted)

	sum := 0
	for _, a := range sorted {
		sum += a
	}
	med, _ := Median(sorted)
	return &AgeStats{
		Count:    len(sorted),
		Youngest: sorted[0],
		Oldest:   sorted[len(sorted)-1],
		Average:  growth.Round1(float64(sum) / float64(len(sorted))),
		Median:   med,
	}
}

// AgeProfile computes the age breakdown of the finishers in recs.
func AgeProfile(year int, recs []model.Normalized) YearAges {
	out := YearAges{Year: year, Bands: make([]BandCount, len(bandDefs))}
	for i, b := range bandDefs {
		out.Bands[i].Band = b.label
	}

	var ages []int
	for _, n := range recs {
		if !n.Finished() {
			continue
		}
		out.Finishers++
		if n.Record.BirthYear == nil {
			continue
		}
		age := year - *n.Record.BirthYear
		if age < MinAge || age > MaxAge {
			out.Excluded++
			continue
		}
		ages = append(ages, age)
		for i, b := range bandDefs {
			if age >= b.min && age <= b.max {
				out.Bands[i].Count++
				break
			}
		}
	}
	out.Age = Summarize(ages)
	return out
}

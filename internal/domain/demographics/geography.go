package demographics

import (
	"sort"
	"strings"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/growth"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"
)

// Count is one entry of a frequency tally.
type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Tally counts values, skipping blanks. The result is ordered by count
// descending with first-seen order on ties.
func Tally(values []string) []Count {
	idx := make(map[string]int)
	out := []Count{}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		i, ok := idx[v]
		if !ok {
			i = len(out)
			idx[v] = i
			out = append(out, Count{Name: v})
		}
		out[i].Count++
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// TopK slices a tally to at most k entries. k <= 0 yields an empty list.
func TopK(tally []Count, k int) []Count {
	if k <= 0 {
		return []Count{}
	}
	if k > len(tally) {
		k = len(tally)
	}
	return tally[:k]
}

// InternationalPercent is the share of finishers whose nationality differs
// from the home country. It is nil when there are no finishers.
func InternationalPercent(finishers, home int) *float64 {
	return growth.Share(finishers-home, finishers)
}

// YearGeography is the nationality and city breakdown of one edition.
type YearGeography struct {
	Year                 int      `json:"year"`
	Finishers            int      `json:"finishers"`
	InternationalPercent *float64 `json:"international_percent"`
	Nationalities        []Count  `json:"nationalities"`
	Cities               []Count  `json:"cities"`
}

// GeographyOptions bounds the tallies of Geography.
type GeographyOptions struct {
	HomeCountry  string
	TopCountries int
	TopCities    int
}

// Geography tallies the nationalities and cities of the finishers in recs.
// A finisher counts as domestic when the nationality matches the home
// country ignoring case; a blank nationality counts as international.
// Nationality codes are tallied upper-cased.
func Geography(year int, recs []model.Normalized, opts GeographyOptions) YearGeography {
	home := strings.TrimSpace(opts.HomeCountry)
	var nats, cities []string
	finishers, domestic := 0, 0
	for _, n := range recs {
		if !n.Finished() {
			continue
		}
		finishers++
		nat := strings.ToUpper(strings.TrimSpace(n.Record.Nationality))
		if home != "" && strings.EqualFold(nat, home) {
			domestic++
		}
		nats = append(nats, nat)
		cities = append(cities, n.Record.City)
	}
	return YearGeography{
		Year:                 year,
		Finishers:            finishers,
		InternationalPercent: InternationalPercent(finishers, domestic),
		Nationalities:        TopK(Tally(nats), opts.TopCountries),
		Cities:               TopK(Tally(cities), opts.TopCities),
	}
}

package service

import (
	"sort"
	"strconv"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/demographics"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/growth"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/identity"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/records"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/standings"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/types"
)

// Exclusion reasons reported in records_excluded_total.
const (
	ReasonNotFinished = "not_finished"
	ReasonNoName      = "no_name"
	ReasonNoDistance  = "no_distance"
	ReasonNoGender    = "no_gender"
	ReasonAgeRange    = "age_out_of_range"
)

var exclusionReasons = []string{ //nolint:gochecknoglobals // fixed reporting order
	ReasonNotFinished, ReasonNoName, ReasonNoDistance, ReasonNoGender, ReasonAgeRange,
}

// assemble runs every aggregator and shapes the output contract. It also
// returns per-reason counts of records left out of some aggregate.
func (a *Analyzer) assemble(ds model.Dataset, ids *identity.Identities) (*types.Analytics, map[string]int) {
	excluded := make(map[string]int, len(exclusionReasons))
	years := ds.Years

	out := &types.Analytics{
		Meta: types.Meta{
			Years:       append([]int(nil), years...),
			Editions:    ds.Editions(),
			HomeCountry: a.homeCountry,
			ClubPolicy:  string(ids.Policy()),
		},
	}

	// Headline counts and participation growth.
	unique := make(map[int]int, len(years))
	out.Growth.PerYear = make([]types.YearCounts, 0, len(years))
	for _, y := range years {
		yc := types.YearCounts{Year: y, Registered: len(ds.Records[y]), UniqueParticipants: ids.FinisherCount(y)}
		for _, n := range ds.Records[y] {
			if !n.Finished() {
				excluded[ReasonNotFinished]++
				continue
			}
			yc.Finished++
			if n.NameKey == "" {
				excluded[ReasonNoName]++
			}
			if n.Distance == "" {
				excluded[ReasonNoDistance]++
			}
			if n.Gender == model.GenderUnknown {
				excluded[ReasonNoGender]++
			}
		}
		unique[y] = yc.UniqueParticipants
		out.Growth.PerYear = append(out.Growth.PerYear, yc)
	}
	out.Growth.Series = growth.Trend(years, unique)

	out.Participants = participants(ids)
	out.Clubs = shapeStandings(standings.Clubs(ds, ids), a.topClubs)
	out.Distances = shapeStandings(standings.Distances(ds, ids), a.topDistances)
	out.Records = records.Build(ds).Entries()

	// Identity-free breakdowns per edition.
	men := make(map[int]int, len(years))
	women := make(map[int]int, len(years))
	geo := demographics.GeographyOptions{
		HomeCountry:  a.homeCountry,
		TopCountries: a.topCountries,
		TopCities:    a.topCities,
	}
	for _, y := range years {
		ages := demographics.AgeProfile(y, ds.Records[y])
		excluded[ReasonAgeRange] += ages.Excluded
		out.Demographics = append(out.Demographics, ages)
		out.Geography = append(out.Geography, demographics.Geography(y, ds.Records[y], geo))

		g := demographics.GenderSplit(y, ds.Records[y])
		men[y], women[y] = g.Men, g.Women
		out.GenderTrend.PerYear = append(out.GenderTrend.PerYear, g)
	}
	out.GenderTrend.Men = growth.Trend(years, men)
	out.GenderTrend.Women = growth.Trend(years, women)

	return out, excluded
}

func participants(ids *identity.Identities) types.Participants {
	p := types.Participants{
		Total:             ids.Len(),
		VeteranCounts:     make(map[string]int, ids.Editions()),
		FullVeterans:      []types.Veteran{},
		LifetimeReturning: make([]types.YearCount, 0, ids.Editions()),
		Chronological:     make([]types.YearSplit, 0, ids.Editions()),
	}
	for n, c := range ids.VeteranCounts() {
		p.VeteranCounts[strconv.Itoa(n)] = c
	}
	for _, v := range ids.FullVeterans() {
		p.FullVeterans = append(p.FullVeterans, types.Veteran{
			Name:          v.DisplayName,
			Years:         v.Years(),
			LastKnownClub: v.LastKnownClub,
		})
	}
	sort.SliceStable(p.FullVeterans, func(i, j int) bool {
		return p.FullVeterans[i].Name < p.FullVeterans[j].Name
	})
	for _, y := range ids.Years() {
		p.LifetimeReturning = append(p.LifetimeReturning, types.YearCount{Year: y, Count: len(ids.LifetimeReturning(y))})
	}
	for _, c := range ids.Chronological() {
		p.Chronological = append(p.Chronological, types.YearSplit{
			Year:      c.Year,
			Newcomers: len(c.Newcomers),
			Returning: len(c.Returning),
		})
	}
	return p
}

// shapeStandings keeps the top n rows per edition and every trend, the
// trends ordered by final-edition size.
func shapeStandings(s *standings.Standings, n int) types.Standings {
	out := types.Standings{PerYear: []types.YearStandings{}}
	for _, y := range s.Years() {
		out.PerYear = append(out.PerYear, types.YearStandings{Year: y, Standings: s.Table(y).Top(n)})
	}
	out.Trends = s.Trends()
	sort.SliceStable(out.Trends, func(i, j int) bool {
		return out.Trends[i].To > out.Trends[j].To
	})
	return out
}

package identity_test

import (
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/normalize"
)

var fiveYears = []int{2022, 2023, 2024, 2025, 2026}

type row struct {
	name, club, gender, distance string
	time                         int // 0 for a non-finisher
}

func dataset(years []int, rows map[int][]row) model.Dataset {
	raw := make(map[int][]model.YearlyResultRecord, len(years))
	for _, y := range years {
		raw[y] = []model.YearlyResultRecord{}
		for _, r := range rows[y] {
			rec := model.YearlyResultRecord{
				Name:     r.name,
				Gender:   model.Gender(r.gender),
				Distance: r.distance,
				Year:     y,
			}
			if r.club != "" {
				c := r.club
				rec.Club = &c
			}
			if r.time > 0 {
				t := r.time
				rec.FinishTimeSeconds = &t
			}
			raw[y] = append(raw[y], rec)
		}
	}
	return normalize.Dataset(years, raw, normalize.NewDistanceTable(nil))
}

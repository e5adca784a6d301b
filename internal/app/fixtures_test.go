package service_test

import (
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"
)

var fixtureYears = []int{2024, 2025, 2026}

func finisher(name, club string, gender model.Gender, distance string, birth, seconds int) model.YearlyResultRecord {
	r := model.YearlyResultRecord{
		Name:              name,
		Gender:            gender,
		Distance:          distance,
		Nationality:       "KAZ",
		City:              "Almaty",
		FinishTimeSeconds: &seconds,
	}
	if club != "" {
		r.Club = &club
	}
	if birth > 0 {
		r.BirthYear = &birth
	}
	return r
}

// fixtureSets is a three-edition race: Ivan Petrov finishes every year and
// changes club, Anna Lee runs the first two, Oleg Kim appears only in the last.
func fixtureSets() map[int][]model.YearlyResultRecord {
	oleg := finisher("Oleg Kim", "Beta", model.GenderMale, "Trail 21", 1985, 5000)
	oleg.Nationality = "RUS"
	return map[int][]model.YearlyResultRecord{
		2024: {
			finisher("Ivan Petrov", "Alpha", model.GenderMale, "VK1000", 1990, 2400),
			finisher("Anna Lee", "Gamma", model.GenderFemale, "VK1000", 2000, 3000),
			{Name: "Bob Dnf", Gender: model.GenderMale, Distance: "VK1000"},
		},
		2025: {
			finisher("  ivan petrov ", "", model.GenderMale, "VK1000", 1990, 2300),
			finisher("Anna Lee", "Gamma", model.GenderFemale, "VK1000", 2000, 3100),
		},
		2026: {
			finisher("Ivan Petrov", "Beta", model.GenderMale, "VK1000", 1990, 2100),
			oleg,
		},
	}
}

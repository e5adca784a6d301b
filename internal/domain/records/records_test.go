package records_test

import (
	"testing"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/normalize"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/records"
	. "github.com/smartystreets/goconvey/convey"
)

func rec(name, club, gender, distance string, seconds int) model.YearlyResultRecord {
	r := model.YearlyResultRecord{Name: name, Gender: model.Gender(gender), Distance: distance}
	if club != "" {
		r.Club = &club
	}
	if seconds > 0 {
		r.FinishTimeSeconds = &seconds
	}
	return r
}

func TestBuild(t *testing.T) {
	years := []int{2022, 2023, 2024, 2025, 2026}
	table := normalize.NewDistanceTable(nil)

	Convey("Given Ivan Petrov improving after changing clubs", t, func() {
		raw := map[int][]model.YearlyResultRecord{
			2022: {rec("Ivan Petrov", "Alpha", "M", "VK", 2400)},
			2023: {},
			2024: {},
			2025: {},
			2026: {rec("ivan petrov", "Beta", "M", "VK1000", 2100)},
		}
		book := records.Build(normalize.Dataset(years, raw, table))

		Convey("Then the all-time record carries the club of the result", func() {
			e, ok := book.Get("VK1000", model.GenderMale)
			So(ok, ShouldBeTrue)
			So(e.AllTime.TimeSeconds, ShouldEqual, 2100)
			So(e.AllTime.Club, ShouldEqual, "Beta")
			So(e.AllTime.Year, ShouldEqual, 2026)

			first, ok := e.Best(2022)
			So(ok, ShouldBeTrue)
			So(first.Club, ShouldEqual, "Alpha")
			So(e.ByYear, ShouldHaveLength, 2)
		})
	})

	Convey("Given equal times in one edition", t, func() {
		raw := map[int][]model.YearlyResultRecord{
			2022: {
				rec("First", "A", "F", "Skyrace", 9000),
				rec("Second", "B", "F", "Skyrace", 9000),
				rec("Slower", "C", "F", "Skyrace", 9100),
			},
			2023: {rec("Later Tie", "D", "F", "Skyrace", 9000)},
			2024: {}, 2025: {}, 2026: {},
		}
		book := records.Build(normalize.Dataset(years, raw, table))
		e, _ := book.Get("SKY21", model.GenderFemale)

		Convey("Then the first-seen result keeps the record", func() {
			So(e.AllTime.Name, ShouldEqual, "First")
			best, _ := e.Best(2022)
			So(best.Name, ShouldEqual, "First")
			later, _ := e.Best(2023)
			So(later.Name, ShouldEqual, "Later Tie")
		})

		Convey("Then the all-time time never exceeds a yearly best", func() {
			for _, m := range e.ByYear {
				So(e.AllTime.TimeSeconds, ShouldBeLessThanOrEqualTo, m.TimeSeconds)
			}
		})
	})

	Convey("Given results missing a gender, a distance or a time", t, func() {
		raw := map[int][]model.YearlyResultRecord{
			2022: {
				rec("No Gender", "A", "", "VK", 2000),
				rec("No Distance", "A", "M", "Unknown", 2000),
				rec("Dnf", "A", "M", "VK", 0),
				rec("Valid", "", "M", "VK", 2600),
			},
			2023: {}, 2024: {}, 2025: {}, 2026: {},
		}
		book := records.Build(normalize.Dataset(years, raw, table))

		Convey("Then only complete results are eligible", func() {
			So(book.Len(), ShouldEqual, 1)
			e, ok := book.Get("VK1000", model.GenderMale)
			So(ok, ShouldBeTrue)
			So(e.AllTime.Name, ShouldEqual, "Valid")
			So(e.AllTime.Club, ShouldBeEmpty)
		})
	})

	Convey("Given several distances and genders", t, func() {
		raw := map[int][]model.YearlyResultRecord{
			2022: {
				rec("A", "", "F", "VK", 3000),
				rec("B", "", "M", "Skyrace", 8000),
				rec("C", "", "M", "VK", 2500),
			},
			2023: {}, 2024: {}, 2025: {}, 2026: {},
		}
		entries := records.Build(normalize.Dataset(years, raw, table)).Entries()

		Convey("Then entries are ordered by distance with men first", func() {
			So(entries, ShouldHaveLength, 3)
			So(entries[0].Distance, ShouldEqual, "SKY21")
			So(entries[1].Distance, ShouldEqual, "VK1000")
			So(entries[1].Gender, ShouldEqual, model.GenderMale)
			So(entries[2].Gender, ShouldEqual, model.GenderFemale)
		})
	})
}

package identity_test

import (
	"testing"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/identity"
	. "github.com/smartystreets/goconvey/convey"
)

func TestVeterans(t *testing.T) {
	Convey("Given participants with different edition counts", t, func() {
		rows := map[int][]row{}
		for _, y := range fiveYears {
			rows[y] = append(rows[y], row{name: "Always", time: 3000})
		}
		rows[2022] = append(rows[2022], row{name: "Once", time: 3100})
		rows[2023] = append(rows[2023], row{name: "Twice", time: 3200})
		rows[2025] = append(rows[2025], row{name: "Twice", time: 3150})

		r, _ := identity.NewResolver(fiveYears)
		ids, _ := r.Resolve(dataset(fiveYears, rows))

		Convey("Then full veterans finished every supplied edition", func() {
			So(keys(ids.FullVeterans()), ShouldResemble, []string{"always"})
		})

		Convey("And veterans(n) matches the exact edition count", func() {
			So(keys(ids.Veterans(1)), ShouldResemble, []string{"once"})
			So(keys(ids.Veterans(2)), ShouldResemble, []string{"twice"})
			So(ids.Veterans(3), ShouldBeEmpty)
		})

		Convey("And the partition by count covers every participant exactly once", func() {
			counts := ids.VeteranCounts()
			So(counts, ShouldResemble, map[int]int{1: 1, 2: 1, 3: 0, 4: 0, 5: 1})

			total := 0
			for n, c := range counts {
				So(n, ShouldBeBetweenOrEqual, 1, ids.Editions())
				total += c
			}
			So(total, ShouldEqual, ids.Len())
		})
	})

	Convey("Given only three supplied editions", t, func() {
		years := []int{2024, 2025, 2026}
		rows := map[int][]row{
			2024: {{name: "A", time: 1}},
			2025: {{name: "A", time: 1}},
			2026: {{name: "A", time: 1}},
		}
		r, _ := identity.NewResolver(years)
		ids, _ := r.Resolve(dataset(years, rows))

		Convey("Then a full veteran needs three editions, not five", func() {
			So(keys(ids.FullVeterans()), ShouldResemble, []string{"a"})
		})
	})
}

func TestReturningDefinitions(t *testing.T) {
	Convey("Given a participant finishing only in the second and fourth year", t, func() {
		ds := dataset(fiveYears, map[int][]row{
			2022: {{name: "Early Bird", time: 2000}},
			2023: {{name: "Gap Runner", time: 2500}, {name: "Early Bird", time: 2100}},
			2025: {{name: "Gap Runner", time: 2400}},
		})
		r, _ := identity.NewResolver(fiveYears)
		ids, _ := r.Resolve(ds)

		Convey("When classifying chronologically", func() {
			chrono := ids.Chronological()
			So(chrono, ShouldHaveLength, 5)

			Convey("Then they are a newcomer in year two and returning in year four", func() {
				So(chrono[1].Year, ShouldEqual, 2023)
				So(keys(chrono[1].Newcomers), ShouldResemble, []string{"gap runner"})
				So(keys(chrono[1].Returning), ShouldResemble, []string{"early bird"})
				So(chrono[3].Year, ShouldEqual, 2025)
				So(keys(chrono[3].Returning), ShouldResemble, []string{"gap runner"})
				So(chrono[3].Newcomers, ShouldBeEmpty)
			})

			Convey("And the first year has no returning finishers", func() {
				So(keys(chrono[0].Newcomers), ShouldResemble, []string{"early bird"})
				So(chrono[0].Returning, ShouldBeEmpty)
			})
		})

		Convey("When classifying by lifetime participation", func() {
			Convey("Then they already count as returning in year two", func() {
				So(keys(ids.LifetimeReturning(2023)), ShouldResemble, []string{"gap runner", "early bird"})
				So(keys(ids.LifetimeReturning(2025)), ShouldResemble, []string{"gap runner"})
				So(keys(ids.LifetimeReturning(2022)), ShouldResemble, []string{"early bird"})
			})
		})
	})
}

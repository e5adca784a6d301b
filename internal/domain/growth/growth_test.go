package growth_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/growth"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCompute(t *testing.T) {
	Convey("Given a from→to pair", t, func() {
		Convey("When from is positive", func() {
			m := growth.Compute(200, 250)

			Convey("Then growth and percent are computed", func() {
				So(m.From, ShouldEqual, 200)
				So(m.To, ShouldEqual, 250)
				So(m.Growth, ShouldEqual, 50)
				So(m.PercentDefined(), ShouldBeTrue)
				So(*m.GrowthPercent, ShouldEqual, 25)
			})
		})

		Convey("When the value shrinks", func() {
			m := growth.Compute(3, 1)
			So(m.Growth, ShouldEqual, -2)
			So(*m.GrowthPercent, ShouldEqual, -67)
		})

		Convey("When the percent needs rounding", func() {
			So(*growth.Compute(3, 4).GrowthPercent, ShouldEqual, 33)
			So(*growth.Compute(8, 9).GrowthPercent, ShouldEqual, 13) // 12.5 rounds away from zero
		})

		Convey("When from is zero", func() {
			m := growth.Compute(0, 12)

			Convey("Then the percent is the undefined sentinel", func() {
				So(m.Growth, ShouldEqual, 12)
				So(m.PercentDefined(), ShouldBeFalse)
				So(m.GrowthPercent, ShouldBeNil)
			})

			Convey("And it serializes as null, never NaN or Inf", func() {
				b, err := json.Marshal(m)
				So(err, ShouldBeNil)
				So(string(b), ShouldEqual, `{"from":0,"to":12,"growth":12,"growth_percent":null}`)
			})
		})

		Convey("When both sides are zero", func() {
			m := growth.Compute(0, 0)
			So(m.Growth, ShouldEqual, 0)
			So(m.GrowthPercent, ShouldBeNil)
		})
	})
}

func TestSeries(t *testing.T) {
	Convey("Given counts over five editions", t, func() {
		years := []int{2022, 2023, 2024, 2025, 2026}
		counts := map[int]int{2022: 100, 2023: 150, 2024: 0, 2025: 30, 2026: 200}

		Convey("When computing year over year", func() {
			steps := growth.YearOverYear(years, counts)

			Convey("Then every adjacent pair gets a step", func() {
				So(steps, ShouldHaveLength, 4)
				So(steps[0].FromYear, ShouldEqual, 2022)
				So(steps[0].ToYear, ShouldEqual, 2023)
				So(*steps[0].GrowthPercent, ShouldEqual, 50)
				So(*steps[1].GrowthPercent, ShouldEqual, -100)
				So(steps[2].GrowthPercent, ShouldBeNil)
				So(steps[2].Growth, ShouldEqual, 30)
			})
		})

		Convey("When computing the total", func() {
			total := growth.Total(years, counts)

			Convey("Then it compares first and last year", func() {
				So(total, ShouldNotBeNil)
				So(total.FromYear, ShouldEqual, 2022)
				So(total.ToYear, ShouldEqual, 2026)
				So(total.Growth, ShouldEqual, 100)
				So(*total.GrowthPercent, ShouldEqual, 100)
			})
		})

		Convey("When a step is serialized", func() {
			b, err := json.Marshal(growth.Trend(years[:2], counts).YearOverYear[0])
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"from_year":2022,"to_year":2023,"from":100,"to":150,"growth":50,"growth_percent":50}`)
		})
	})

	Convey("Given a single edition", t, func() {
		s := growth.Trend([]int{2022}, map[int]int{2022: 5})
		So(s.YearOverYear, ShouldBeEmpty)
		So(s.Total, ShouldBeNil)
	})
}

func TestShare(t *testing.T) {
	Convey("Given part and total counts", t, func() {
		So(*growth.Share(1, 3), ShouldEqual, 33.3)
		So(*growth.Share(2, 3), ShouldEqual, 66.7)
		So(growth.Share(5, 0), ShouldBeNil)

		v := growth.Share(0, 7)
		So(math.IsNaN(*v), ShouldBeFalse)
		So(*v, ShouldEqual, 0)
	})
}

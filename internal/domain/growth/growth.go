// Package growth computes from→to deltas and year-over-year series.
package growth

import "math"

const percentScale = 100

// Metric is a from→to comparison. GrowthPercent is nil when From is zero
// and serializes as null; it is never NaN or Inf.
type Metric struct {
	From          int  `json:"from"`
	To            int  `json:"to"`
	Growth        int  `json:"growth"`
	GrowthPercent *int `json:"growth_percent"`
}

// Compute returns the Metric for a (from, to) pair.
func Compute(from, to int) Metric {
	m := Metric{From: from, To: to, Growth: to - from}
	if from != 0 {
		p := int(math.Round(float64(to-from) / float64(from) * percentScale))
		m.GrowthPercent = &p
	}
	return m
}

// PercentDefined reports whether GrowthPercent carries a value.
func (m Metric) PercentDefined() bool { return m.GrowthPercent != nil }

// Step is a Metric between two editions.
type Step struct {
	FromYear int `json:"from_year"`
	ToYear   int `json:"to_year"`
	Metric
}

// Series holds the pairwise steps across adjacent editions plus the
// first-versus-last comparison.
type Series struct {
	YearOverYear []Step `json:"year_over_year"`
	Total        *Step  `json:"total"`
}

// YearOverYear applies Compute to every adjacent pair of years. Missing
// counts read as zero.
func YearOverYear(years []int, counts map[int]int) []Step {
	if len(years) < 2 {
		return []Step{}
	}
	out := make([]Step, 0, len(years)-1)
	for i := 1; i < len(years); i++ {
		prev, cur := years[i-1], years[i]
		out = append(out, Step{FromYear: prev, ToYear: cur, Metric: Compute(counts[prev], counts[cur])})
	}
	return out
}

// Total compares the first and last year. It returns nil for fewer than
// two years.
func Total(years []int, counts map[int]int) *Step {
	if len(years) < 2 {
		return nil
	}
	first, last := years[0], years[len(years)-1]
	return &Step{FromYear: first, ToYear: last, Metric: Compute(counts[first], counts[last])}
}

// Trend builds the full Series for counts over years.
func Trend(years []int, counts map[int]int) Series {
	return Series{
		YearOverYear: YearOverYear(years, counts),
		Total:        Total(years, counts),
	}
}

// Share returns part/total as a percentage rounded to one decimal, or nil
// when total is zero.
func Share(part, total int) *float64 {
	if total == 0 {
		return nil
	}
	v := Round1(float64(part) / float64(total) * percentScale)
	return &v
}

// Round1 rounds x to one decimal place.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

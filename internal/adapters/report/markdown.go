package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/types"
)

// RenderMarkdown writes a tabular Markdown report of a. Columns are padded
// by display width so names in any script line up in plain text.
func RenderMarkdown(w io.Writer, a *types.Analytics, opts ...Option) error {
	if a == nil {
		return ErrNoAnalytics
	}
	return render(w, a, newOptions(opts))
}

func render(w io.Writer, a *types.Analytics, o options) error {
	var b strings.Builder
	fy := a.FinalYear()

	fmt.Fprintf(&b, "# %s\n\n", o.title)
	fmt.Fprintf(&b, "Editions: %s. Club policy: %s. Home country: %s. Dataset: `%s`.\n",
		joinYears(a.Meta.Years), a.Meta.ClubPolicy, a.Meta.HomeCountry, a.Meta.DatasetID)

	section(&b, "Participation")
	t := newTable([]string{"Year", "Registered", "Finished", "Unique"}, 1, 2, 3)
	for _, yc := range a.Growth.PerYear {
		t.add(itoa(yc.Year), itoa(yc.Registered), itoa(yc.Finished), itoa(yc.UniqueParticipants))
	}
	t.write(&b)

	if len(a.Growth.YearOverYear) > 0 {
		b.WriteString("\n")
		t = newTable([]string{"From", "To", "Unique from", "Unique to", "Growth"}, 2, 3, 4)
		for _, s := range a.Growth.YearOverYear {
			t.add(itoa(s.FromYear), itoa(s.ToYear), itoa(s.From), itoa(s.To), FormatGrowth(s.Metric))
		}
		if s := a.Growth.Total; s != nil {
			t.add(itoa(s.FromYear), itoa(s.ToYear), itoa(s.From), itoa(s.To), FormatGrowth(s.Metric))
		}
		t.write(&b)
	}

	section(&b, "Participants")
	fmt.Fprintf(&b, "%d unique participants, %d finished every edition.\n\n",
		a.Participants.Total, len(a.Participants.FullVeterans))
	t = newTable([]string{"Editions finished", "Participants"}, 0, 1)
	for n := 1; n <= a.Meta.Editions; n++ {
		t.add(itoa(n), itoa(a.Participants.VeteranCounts[itoa(n)]))
	}
	t.write(&b)
	b.WriteString("\n")
	t = newTable([]string{"Year", "Newcomers", "Returning", "Lifetime returning"}, 1, 2, 3)
	for i, c := range a.Participants.Chronological {
		lifetime := ""
		if i < len(a.Participants.LifetimeReturning) {
			lifetime = itoa(a.Participants.LifetimeReturning[i].Count)
		}
		t.add(itoa(c.Year), itoa(c.Newcomers), itoa(c.Returning), lifetime)
	}
	t.write(&b)

	standingsSection(&b, fmt.Sprintf("Clubs %d", fy), "Club", a.Clubs, fy, o.topClubs)
	standingsSection(&b, fmt.Sprintf("Distances %d", fy), "Distance", a.Distances, fy, maxRows)

	section(&b, "Course records")
	t = newTable([]string{"Distance", "Gender", "Name", "Time", "Year", "Club"}, 3, 4)
	for _, e := range a.Records {
		t.add(e.Distance, string(e.Gender), e.AllTime.Name, FormatTime(e.AllTime.TimeSeconds), itoa(e.AllTime.Year), e.AllTime.Club)
	}
	t.write(&b)

	section(&b, "Age")
	headers := []string{"Year", "Finishers", "Youngest", "Oldest", "Average", "Median"}
	if len(a.Demographics) > 0 {
		for _, band := range a.Demographics[0].Bands {
			headers = append(headers, band.Band)
		}
	}
	right := make([]int, 0, len(headers))
	for i := 1; i < len(headers); i++ {
		right = append(right, i)
	}
	t = newTable(headers, right...)
	for _, d := range a.Demographics {
		row := []string{itoa(d.Year), itoa(d.Finishers), notAvailable, notAvailable, notAvailable, notAvailable}
		if d.Age != nil {
			row[2], row[3] = itoa(d.Age.Youngest), itoa(d.Age.Oldest)
			row[4] = strconv.FormatFloat(d.Age.Average, 'f', 1, 64)
			row[5] = itoa(d.Age.Median)
		}
		for _, band := range d.Bands {
			row = append(row, itoa(band.Count))
		}
		t.add(row...)
	}
	t.write(&b)

	section(&b, "Geography")
	t = newTable([]string{"Year", "Finishers", "International", "Nationalities", "Cities"}, 1, 2)
	for _, g := range a.Geography {
		nats := make([]string, 0, len(g.Nationalities))
		for _, c := range g.Nationalities {
			nats = append(nats, fmt.Sprintf("%s %d", c.Name, c.Count))
		}
		cities := make([]string, 0, len(g.Cities))
		for _, c := range g.Cities {
			cities = append(cities, fmt.Sprintf("%s %d", c.Name, c.Count))
		}
		t.add(itoa(g.Year), itoa(g.Finishers), FormatShare(g.InternationalPercent),
			strings.Join(nats, ", "), strings.Join(cities, ", "))
	}
	t.write(&b)

	section(&b, "Gender")
	t = newTable([]string{"Year", "Men", "Women", "Unknown"}, 1, 2, 3)
	for _, g := range a.GenderTrend.PerYear {
		t.add(itoa(g.Year), itoa(g.Men), itoa(g.Women), itoa(g.Unknown))
	}
	t.write(&b)
	if m, f := a.GenderTrend.Men.Total, a.GenderTrend.Women.Total; m != nil && f != nil {
		fmt.Fprintf(&b, "\nMen %s, women %s since %d.\n", FormatGrowth(m.Metric), FormatGrowth(f.Metric), m.FromYear)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}

// maxRows bounds tables whose length has no configured limit.
const maxRows = 20

func standingsSection(b *strings.Builder, title, keyHeader string, s types.Standings, year, n int) {
	section(b, title)
	t := newTable([]string{"#", keyHeader, "Total", "Men", "Women"}, 0, 2, 3, 4)
	rows, _ := s.Year(year)
	for i, r := range rows {
		if i == n {
			break
		}
		t.add(itoa(i+1), r.Name, itoa(r.Total), itoa(r.Men), itoa(r.Women))
	}
	t.write(b)

	if len(s.Trends) == 0 {
		return
	}
	b.WriteString("\n")
	t = newTable([]string{keyHeader, "First seen", "From", "To", "Growth"}, 2, 3, 4)
	for i, tr := range s.Trends {
		if i == n {
			break
		}
		t.add(tr.Name, itoa(tr.FirstYear), itoa(tr.From), itoa(tr.To), FormatGrowth(tr.Metric))
	}
	t.write(b)
}

func section(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n## %s\n\n", title)
}

func joinYears(years []int) string {
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = itoa(y)
	}
	return strings.Join(parts, ", ")
}

func itoa(n int) string { return strconv.Itoa(n) }

// table is a Markdown table padded by display width.
type table struct {
	headers []string
	right   map[int]bool
	rows    [][]string
}

func newTable(headers []string, rightAligned ...int) *table {
	t := &table{headers: headers, right: make(map[int]bool, len(rightAligned))}
	for _, i := range rightAligned {
		t.right[i] = true
	}
	return t
}

func (t *table) add(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = strings.ReplaceAll(cells[i], "|", `\|`)
		}
	}
	t.rows = append(t.rows, row)
}

func (t *table) write(b *strings.Builder) {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = max(runewidth.StringWidth(h), 3)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	t.line(b, t.headers, widths)
	b.WriteString("|")
	for i, w := range widths {
		if t.right[i] {
			b.WriteString(" " + strings.Repeat("-", w-1) + ": |")
		} else {
			b.WriteString(" " + strings.Repeat("-", w) + " |")
		}
	}
	b.WriteString("\n")
	for _, row := range t.rows {
		t.line(b, row, widths)
	}
}

func (t *table) line(b *strings.Builder, cells []string, widths []int) {
	b.WriteString("|")
	for i, cell := range cells {
		b.WriteString(" ")
		if t.right[i] {
			b.WriteString(runewidth.FillLeft(cell, widths[i]))
		} else {
			b.WriteString(runewidth.FillRight(cell, widths[i]))
		}
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

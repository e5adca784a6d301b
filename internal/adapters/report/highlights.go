package report

import (
	"fmt"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/types"
)

// Slide is one card of the highlights.
type Slide struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// Highlights is the short publication summary of a run.
type Highlights struct {
	Title     string  `json:"title"`
	Headline  string  `json:"headline"`
	Year      int     `json:"year"`
	DatasetID string  `json:"dataset_id"`
	Slides    []Slide `json:"slides"`
}

// ExtractHighlights reshapes selected parts of a into headline and slides.
func ExtractHighlights(a *types.Analytics, opts ...Option) Highlights {
	return extract(a, newOptions(opts))
}

func extract(a *types.Analytics, o options) Highlights {
	fy := a.FinalYear()
	h := Highlights{Title: o.title, Year: fy, DatasetID: a.Meta.DatasetID, Slides: []Slide{}}

	yc, _ := a.YearCounts(fy)
	h.Headline = fmt.Sprintf("%d unique finishers in %d", yc.UniqueParticipants, fy)
	if t := a.Growth.Total; t != nil {
		h.Headline += fmt.Sprintf(", %s since %d", FormatGrowth(t.Metric), t.FromYear)
	}

	h.Slides = append(h.Slides,
		participationSlide(a),
		clubsSlide(a, fy, o.topClubs),
		veteransSlide(a, o.maxVeterans),
		recordsSlide(a),
		internationalSlide(a, fy),
	)
	return h
}

func participationSlide(a *types.Analytics) Slide {
	s := Slide{Title: "Participation", Lines: []string{}}
	for _, yc := range a.Growth.PerYear {
		s.Lines = append(s.Lines, fmt.Sprintf("%d: %d registered, %d finished, %d unique",
			yc.Year, yc.Registered, yc.Finished, yc.UniqueParticipants))
	}
	return s
}

func clubsSlide(a *types.Analytics, year, n int) Slide {
	s := Slide{Title: fmt.Sprintf("Top clubs %d", year), Lines: []string{}}
	rows, _ := a.Clubs.Year(year)
	for i, r := range rows {
		if i == n {
			break
		}
		s.Lines = append(s.Lines, fmt.Sprintf("%d. %s: %d (%d M / %d F)", i+1, r.Name, r.Total, r.Men, r.Women))
	}
	return s
}

func veteransSlide(a *types.Analytics, limit int) Slide {
	vets := a.Participants.FullVeterans
	s := Slide{
		Title: "Full veterans",
		Lines: []string{fmt.Sprintf("%d runners finished all %d editions", len(vets), a.Meta.Editions)},
	}
	for i, v := range vets {
		if i == limit {
			s.Lines = append(s.Lines, fmt.Sprintf("and %d more", len(vets)-limit))
			break
		}
		line := v.Name
		if v.LastKnownClub != "" {
			line += " (" + v.LastKnownClub + ")"
		}
		s.Lines = append(s.Lines, line)
	}
	return s
}

func recordsSlide(a *types.Analytics) Slide {
	s := Slide{Title: "Course records", Lines: []string{}}
	for _, e := range a.Records {
		m := e.AllTime
		line := fmt.Sprintf("%s %s: %s %s (%d", e.Distance, e.Gender, m.Name, FormatTime(m.TimeSeconds), m.Year)
		if m.Club != "" {
			line += ", " + m.Club
		}
		s.Lines = append(s.Lines, line+")")
	}
	return s
}

func internationalSlide(a *types.Analytics, year int) Slide {
	s := Slide{Title: "International field", Lines: []string{}}
	for _, g := range a.Geography {
		if g.Year != year {
			continue
		}
		s.Lines = append(s.Lines, fmt.Sprintf("%s of %d finishers from abroad", FormatShare(g.InternationalPercent), g.Finishers))
		for _, c := range g.Nationalities {
			s.Lines = append(s.Lines, fmt.Sprintf("%s: %d", c.Name, c.Count))
		}
	}
	return s
}

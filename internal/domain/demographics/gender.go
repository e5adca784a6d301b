package demographics

import "github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"

// GenderCount is the gender split of one edition's finish records.
type GenderCount struct {
	Year    int `json:"year"`
	Men     int `json:"men"`
	Women   int `json:"women"`
	Unknown int `json:"unknown"`
}

// Total returns the number of finish records counted.
func (g GenderCount) Total() int { return g.Men + g.Women + g.Unknown }

// GenderSplit counts the finishers in recs by gender.
func GenderSplit(year int, recs []model.Normalized) GenderCount {
	out := GenderCount{Year: year}
	for _, n := range recs {
		if !n.Finished() {
			continue
		}
		switch n.Gender {
		case model.GenderMale:
			out.Men++
		case model.GenderFemale:
			out.Women++
		default:
			out.Unknown++
		}
	}
	return out
}

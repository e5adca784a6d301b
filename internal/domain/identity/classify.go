package identity

import "github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/dedupe"

// Veterans returns the participants who finished in exactly n distinct
// editions, in first-discovered order.
func (ids *Identities) Veterans(n int) []*Participant {
	var out []*Participant
	for _, p := range ids.Participants() {
		if p.YearCount() == n {
			out = append(out, p)
		}
	}
	return out
}

// FullVeterans returns the participants who finished every processed edition.
func (ids *Identities) FullVeterans() []*Participant {
	return ids.Veterans(ids.Editions())
}

// VeteranCounts partitions participants by their number of editions.
// Every key from 1 to Editions is present.
func (ids *Identities) VeteranCounts() map[int]int {
	out := make(map[int]int, ids.Editions())
	for n := 1; n <= ids.Editions(); n++ {
		out[n] = 0
	}
	for _, p := range ids.Participants() {
		out[p.YearCount()]++
	}
	return out
}

// LifetimeReturning returns finishers of year who finished more than one
// edition overall. Order is ignored: a participant also counts in their
// first year when they come back later.
func (ids *Identities) LifetimeReturning(year int) []*Participant {
	var out []*Participant
	for _, p := range ids.FinishersIn(year) {
		if p.YearCount() > 1 {
			out = append(out, p)
		}
	}
	return out
}

// Classification splits one edition's finishers into newcomers and
// returning participants relative to strictly earlier editions.
type Classification struct {
	Year      int
	Newcomers []*Participant
	Returning []*Participant
}

// Chronological classifies every edition in ascending order. A finisher is
// a newcomer in year Y when absent from all finishers of editions before Y.
func (ids *Identities) Chronological() []Classification {
	out := make([]Classification, 0, len(ids.years))
	everSeen := dedupe.New(dedupe.WithCapacity(ids.Len()))
	for _, year := range ids.years {
		c := Classification{Year: year}
		for _, p := range ids.FinishersIn(year) {
			if everSeen.Contains(p.Key) {
				c.Returning = append(c.Returning, p)
			} else {
				c.Newcomers = append(c.Newcomers, p)
			}
		}
		everSeen.Merge(ids.finishers[year])
		out = append(out, c)
	}
	return out
}

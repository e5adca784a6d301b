package samplegen

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/dedupe"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/normalize"
)

const maxNameTries = 8

// runner is one member of the pool editions sample from.
type runner struct {
	name        string
	gender      model.Gender
	birthYear   int // zero when unpublished
	nationality string
	city        string
	clubs       []string // per edition index, empty when unaffiliated
	distance    int
	pace        float64
}

// Generate builds one result set per configured edition. Editions are
// generated concurrently but each draws from its own seeded source, so the
// output only depends on cfg.
func Generate(ctx context.Context, cfg Config) (map[int][]model.YearlyResultRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pool := newPool(cfg)

	type editionResult struct {
		year int
		recs []model.YearlyResultRecord
		err  error
	}

	jobs := make(chan int, len(cfg.Years))
	for i := range cfg.Years {
		jobs <- i
	}
	close(jobs)

	resultChan := make(chan editionResult, len(cfg.Years))
	workerCount := min(max(cfg.Workers, 1), len(cfg.Years))
	for w := 0; w < workerCount; w++ {
		go func() {
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					resultChan <- editionResult{year: cfg.Years[idx], err: err}
					continue
				}
				resultChan <- editionResult{year: cfg.Years[idx], recs: edition(cfg, pool, idx)}
			}
		}()
	}

	out := make(map[int][]model.YearlyResultRecord, len(cfg.Years))
	for range cfg.Years {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("generation cancelled: %w", ctx.Err())
		case res := <-resultChan:
			if res.err != nil {
				return nil, fmt.Errorf("generate %d: %w", res.year, res.err)
			}
			out[res.year] = res.recs
		}
	}
	return out, nil
}

// newPool draws the runner pool. Names are unique by normalized key.
func newPool(cfg Config) []runner {
	rng := rand.New(rand.NewPCG(cfg.Seed, 0))
	seen := dedupe.New(dedupe.WithCapacity(cfg.Participants))

	pool := make([]runner, cfg.Participants)
	for i := range pool {
		r := &pool[i]

		firsts := firstNamesM
		r.gender = model.GenderMale
		if rng.IntN(2) == 1 {
			firsts = firstNamesF
			r.gender = model.GenderFemale
		}
		r.name = uniqueName(rng, seen, firsts, i)

		if rng.Float64() >= missingBirthRate {
			r.birthYear = minBirthYear + rng.IntN(birthYearSpan)
		}
		r.nationality, r.city = "KAZ", "Almaty"
		if rng.Float64() < foreignRate {
			r.nationality = nationalities[rng.IntN(len(nationalities))]
			r.city = cities[rng.IntN(len(cities))]
		}

		r.clubs = make([]string, len(cfg.Years))
		club := ""
		if rng.Float64() >= noClubRate {
			club = clubs[rng.IntN(len(clubs))]
		}
		for y := range r.clubs {
			if y > 0 && rng.Float64() < clubChangeRate {
				club = clubs[rng.IntN(len(clubs))]
			}
			r.clubs[y] = club
		}

		r.distance = pickDistance(rng)
		r.pace = 0.8 + rng.Float64()*0.9
	}
	return pool
}

func uniqueName(rng *rand.Rand, seen *dedupe.Set, firsts []string, i int) string {
	for try := 0; try < maxNameTries; try++ {
		first := firsts[rng.IntN(len(firsts))]
		last := lastNames[rng.IntN(len(lastNames))]
		name := first + " " + last
		if try > 0 {
			name = fmt.Sprintf("%s %c. %s", first, 'A'+rune(rng.IntN(26)), last)
		}
		if !seen.SeenAndRecord(normalize.Name(name)) {
			return name
		}
	}
	name := "Runner " + strconv.Itoa(i+1)
	seen.SeenAndRecord(normalize.Name(name))
	return name
}

func pickDistance(rng *rand.Rand) int {
	total := 0
	for _, d := range distances {
		total += d.weight
	}
	n := rng.IntN(total)
	for i, d := range distances {
		if n < d.weight {
			return i
		}
		n -= d.weight
	}
	return 0
}

// edition samples the registrants of the edition at index idx.
func edition(cfg Config, pool []runner, idx int) []model.YearlyResultRecord {
	year := cfg.Years[idx]
	rng := rand.New(rand.NewPCG(cfg.Seed, uint64(year)))
	turnout := min(1, cfg.Turnout+cfg.TurnoutGrow*float64(idx))

	out := make([]model.YearlyResultRecord, 0, int(float64(len(pool))*turnout))
	for i := range pool {
		if rng.Float64() >= turnout {
			continue
		}
		r := &pool[i]
		d := distances[r.distance]

		rec := model.YearlyResultRecord{
			Bib:         strconv.Itoa(len(out) + 1),
			Name:        r.name,
			Gender:      r.gender,
			Distance:    d.code,
			Nationality: r.nationality,
			City:        r.city,
			Year:        year,
		}
		switch p := rng.Float64(); {
		case p < shoutedNameRate:
			rec.Name = strings.ToUpper(r.name)
		case p < shoutedNameRate+paddedNameRate:
			rec.Name = " " + r.name + "  "
		}
		if rng.Float64() < legacyLabelRate {
			rec.Distance = d.legacy
		}
		if rng.Float64() < unknownGender {
			rec.Gender = model.GenderUnknown
		}
		if c := r.clubs[idx]; c != "" {
			rec.Club = &c
		}
		if r.birthYear > 0 {
			b := r.birthYear
			rec.BirthYear = &b
			rec.Category = category(r.gender, year-b)
		}
		if rng.Float64() >= cfg.DNFRate {
			t := finishTime(rng, d.baseSeconds, r.pace, idx)
			rec.FinishTimeSeconds = &t
		}
		out = append(out, rec)
	}
	return out
}

func category(g model.Gender, age int) string {
	prefix := string(g)
	if prefix == "" {
		prefix = "X"
	}
	switch {
	case age < 18:
		return prefix + "J"
	case age < 40:
		return prefix + "18"
	case age < 50:
		return prefix + "40"
	default:
		return prefix + "50"
	}
}

func finishTime(rng *rand.Rand, base int, pace float64, idx int) int {
	jitter := 1 + (rng.Float64()*2-1)*timeJitter
	improve := 1 - yearlyImprove*float64(idx)
	return int(float64(base) * pace * jitter * improve)
}

// Package normalize turns raw result fields into canonical matching keys.
package normalize

import (
	"strings"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/model"
)

// UnknownDistance is the sentinel label feeds use for a missing distance.
const UnknownDistance = "Unknown"

const htmlQuote = "&quot;"

// Name returns the identity key for a raw name: lowercased and trimmed.
// An empty result means the record takes no part in identity resolution.
func Name(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Club decodes the HTML double-quote entity, collapses whitespace runs and
// trims. Nil stays nil; a value that is blank after cleanup is nil too.
func Club(raw *string) *string {
	if raw == nil {
		return nil
	}
	s := strings.ReplaceAll(*raw, htmlQuote, `"`)
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return nil
	}
	return &s
}

// Record builds the normalized view of r.
func Record(r model.YearlyResultRecord, table DistanceTable) model.Normalized {
	n := model.Normalized{
		Record:      r,
		NameKey:     Name(r.Name),
		DisplayName: strings.TrimSpace(r.Name),
		Gender:      model.ParseGender(string(r.Gender)),
	}
	if c := Club(r.Club); c != nil {
		n.Club = *c
	}
	if code, ok := table.Lookup(r.Distance); ok {
		n.Distance = code
	}
	return n
}

// Dataset normalizes every edition in raw. years must already be validated
// as strictly ascending; it becomes the processing order of the result.
func Dataset(years []int, raw map[int][]model.YearlyResultRecord, table DistanceTable) model.Dataset {
	ds := model.Dataset{
		Years:   append([]int(nil), years...),
		Records: make(map[int][]model.Normalized, len(years)),
	}
	for _, y := range years {
		recs := raw[y]
		out := make([]model.Normalized, len(recs))
		for i, r := range recs {
			if r.Year == 0 {
				r.Year = y
			}
			out[i] = Record(r, table)
		}
		ds.Records[y] = out
	}
	return ds
}

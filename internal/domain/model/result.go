// Package model contains domain models passed between layers.
package model

import "strings"

// Gender of a finisher as published in the yearly protocol.
type Gender string

// Known genders. The zero value means unknown.
const (
	GenderUnknown Gender = ""
	GenderMale    Gender = "M"
	GenderFemale  Gender = "F"
)

// ParseGender maps a raw protocol value onto a known Gender.
// Anything other than M/F (case-insensitive) is unknown.
func ParseGender(raw string) Gender {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "M":
		return GenderMale
	case "F":
		return GenderFemale
	default:
		return GenderUnknown
	}
}

// YearlyResultRecord is one row of a yearly result set as supplied by the
// upstream ingestor. It is never mutated.
type YearlyResultRecord struct {
	Bib               string  `json:"bib"`
	Name              string  `json:"name"`
	Club              *string `json:"club"`
	BirthYear         *int    `json:"birth_year"`
	Gender            Gender  `json:"gender"`
	Category          string  `json:"category"`
	Distance          string  `json:"distance"`
	Nationality       string  `json:"nationality"`
	City              string  `json:"city"`
	FinishTimeSeconds *int    `json:"finish_time_seconds"` // nil for a non-finisher
	Year              int     `json:"year"`
}

// Finished reports whether the record carries a finish time.
func (r YearlyResultRecord) Finished() bool {
	return r.FinishTimeSeconds != nil
}

// Normalized wraps a source record with its canonical keys.
type Normalized struct {
	Record YearlyResultRecord

	NameKey     string // lowercased trimmed name; empty excludes the record from identity resolution
	DisplayName string // trimmed raw name
	Club        string // normalized club, empty when unknown
	Distance    string // canonical distance, empty when excluded from distance aggregates
	Gender      Gender
}

// Finished reports whether the underlying record carries a finish time.
func (n Normalized) Finished() bool { return n.Record.Finished() }

// Time returns the finish time in seconds, or 0 for a non-finisher.
func (n Normalized) Time() int {
	if n.Record.FinishTimeSeconds == nil {
		return 0
	}
	return *n.Record.FinishTimeSeconds
}

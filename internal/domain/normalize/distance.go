package normalize

import "strings"

// DistanceTable maps legacy distance labels onto canonical codes.
type DistanceTable struct {
	aliases map[string]string
}

// defaultAliases merges the naming used across editions. Labels missing
// here pass through unchanged.
var defaultAliases = map[string]string{ //nolint:gochecknoglobals // fixed lookup table
	"VK":                 "VK1000",
	"Vertical":           "VK1000",
	"Vertical Kilometer": "VK1000",
	"Вертикальный км":    "VK1000",
	"Skyrace":            "SKY21",
	"Sky Race 21":        "SKY21",
	"Trail 12":           "TRAIL12",
	"Trail12":            "TRAIL12",
	"Kids":               "KIDS3",
}

// NewDistanceTable returns the built-in table with extra aliases layered
// on top. Blank keys or values in extra are ignored.
func NewDistanceTable(extra map[string]string) DistanceTable {
	t := DistanceTable{aliases: make(map[string]string, len(defaultAliases)+len(extra))}
	for k, v := range defaultAliases {
		t.aliases[k] = v
	}
	for k, v := range extra {
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		t.aliases[k] = v
	}
	return t
}

// Lookup returns the canonical code for label. Unmapped labels pass through
// trimmed. ok is false for a blank label or the Unknown sentinel, which are
// excluded from every distance-keyed aggregate.
func (t DistanceTable) Lookup(label string) (string, bool) {
	label = strings.TrimSpace(label)
	if label == "" || strings.EqualFold(label, UnknownDistance) {
		return "", false
	}
	if code, ok := t.aliases[label]; ok {
		return code, true
	}
	return label, true
}

// Len returns the number of aliases in the table.
func (t DistanceTable) Len() int { return len(t.aliases) }

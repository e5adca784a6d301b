package identity

import (
	"fmt"
	"strings"
)

// ClubPolicy selects which clubs a participant counts for within one year.
type ClubPolicy string

// Supported club-per-year policies.
const (
	// ClubPolicySingle counts the last non-empty club of the year.
	ClubPolicySingle ClubPolicy = "single"
	// ClubPolicyAll counts every distinct club seen that year.
	ClubPolicyAll ClubPolicy = "all"
)

// ParseClubPolicy parses a configured policy name. Empty means single.
func ParseClubPolicy(s string) (ClubPolicy, error) {
	switch ClubPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", ClubPolicySingle:
		return ClubPolicySingle, nil
	case ClubPolicyAll:
		return ClubPolicyAll, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

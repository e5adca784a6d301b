package report

import (
	"fmt"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/growth"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	notAvailable     = "n/a"
)

// FormatTime renders a finish time as h:mm:ss, or m:ss under an hour.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / secondsPerHour
	m := seconds % secondsPerHour / secondsPerMinute
	s := seconds % secondsPerMinute
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatPercent renders a signed growth percent, n/a when undefined.
func FormatPercent(p *int) string {
	if p == nil {
		return notAvailable
	}
	return fmt.Sprintf("%+d%%", *p)
}

// FormatShare renders a one-decimal share, n/a when undefined.
func FormatShare(p *float64) string {
	if p == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.1f%%", *p)
}

// FormatGrowth renders a metric as "+12 (+25%)".
func FormatGrowth(m growth.Metric) string {
	return fmt.Sprintf("%+d (%s)", m.Growth, FormatPercent(m.GrowthPercent))
}

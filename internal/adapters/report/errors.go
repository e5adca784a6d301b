package report

import "errors"

// Sentinel kinds for report errors.
var (
	ErrNoAnalytics = errors.New("no analytics to report")
	ErrEncode      = errors.New("encode report")
)

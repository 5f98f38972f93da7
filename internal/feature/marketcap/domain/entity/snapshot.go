package entity

import "time"

// ShareSnapshot is one reported outstanding-share-count observation, keyed by
// the filing's period end date.
type ShareSnapshot struct {
	ReportDate time.Time // period end date of the filing
	Shares     float64   // reported shares outstanding
	SourceForm string    // "10-K" or "10-Q"
}

// Package entity defines the domain models for the contracts feature.
package entity

import "time"

// RawAward is a single award-search result row as supplied by the spending
// API, before normalization. Optional fields keep their absence explicit; the
// usecase layer resolves defaults.
type RawAward struct {
	ID        string
	Recipient string
	Amount    *float64 // nil when the row carried no amount
	Agency    string
	Type      string
	StartDate string // "YYYY-MM-DD", or empty when unknown
}

// Award is a normalized federal contract award record.
type Award struct {
	ID        string
	Recipient string
	Amount    float64
	Agency    string
	Type      string
	StartDate time.Time // zero when the source row had no parsable date
	IsLarge   bool
	Ticker    string // set only by the per-ticker filter variant
}

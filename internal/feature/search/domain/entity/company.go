// Package entity defines the domain models for the search feature.
package entity

// Company is one row of the SEC ticker directory.
type Company struct {
	CIK    int    // SEC Central Index Key
	Ticker string // exchange ticker symbol
	Title  string // registered company name
}

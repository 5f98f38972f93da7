// Package entity defines the domain models for the marketcap feature.
package entity

// FactEntry is a single reported observation inside a company-facts unit list.
type FactEntry struct {
	End  string  // period end date, "YYYY-MM-DD"
	Val  float64 // reported value
	Form string  // filing form, e.g. "10-K", "10-Q"
}

// FactTag groups one tag's observations by unit kind (e.g. "shares", "pure").
type FactTag struct {
	Units map[string][]FactEntry
}

// CompanyFacts is the typed facts tree: taxonomy → tag → FactTag.
// It is built at the EDGAR adapter boundary; raw JSON never crosses into
// the usecase layer.
type CompanyFacts map[string]map[string]FactTag

// Package dto defines response DTOs for the financials endpoint.
package dto

// FinancialsResponse is the combined payload consumed by the chart front end.
// The three series fields are index-aligned; all list fields are always
// present, possibly empty.
type FinancialsResponse struct {
	Labels       []string        `json:"labels"`     // snapshot dates, "YYYY-MM-DD"
	Shares       []float64       `json:"shares"`     // shares outstanding per date
	MarketCap    []float64       `json:"market_cap"` // shares × resolved close
	GovContracts []AwardResponse `json:"gov_contracts"`
	Ticker       string          `json:"ticker"`
	Company      string          `json:"company"`
}

// AwardResponse is one normalized federal contract award.
type AwardResponse struct {
	ID        string  `json:"id"`
	Recipient string  `json:"recipient"`
	Amount    float64 `json:"amount"`
	Agency    string  `json:"agency"`
	Type      string  `json:"type"`
	StartDate string  `json:"start_date"` // empty when the source had no parsable date
	IsLarge   bool    `json:"is_large"`
}

// Package dto defines data transfer objects for SEC EDGAR API responses.
package dto

// CompanyFactsResponse represents the XBRL companyfacts JSON document
// (taxonomy → tag → units → observations).
type CompanyFactsResponse struct {
	CIK        int                               `json:"cik"`
	EntityName string                            `json:"entityName"`
	Facts      map[string]map[string]FactConcept `json:"facts"`
}

// FactConcept holds one tag's metadata and its unit-grouped observations.
type FactConcept struct {
	Label       string                 `json:"label"`
	Description string                 `json:"description"`
	Units       map[string][]FactValue `json:"units"`
}

// FactValue is a single reported observation within a unit list.
type FactValue struct {
	Start string  `json:"start,omitempty"`
	End   string  `json:"end"`
	Val   float64 `json:"val"`
	FY    int     `json:"fy"`
	FP    string  `json:"fp"`
	Form  string  `json:"form"`
	Filed string  `json:"filed"`
}

// Package dto defines response DTOs for the search endpoint.
package dto

// SearchResultResponse is one autocomplete candidate.
type SearchResultResponse struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
	CIK    int    `json:"cik"`
}

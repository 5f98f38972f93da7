// Package dto defines data transfer objects for the SEC ticker directory.
package dto

// CompanyTickersResponse is the company_tickers.json document: a JSON object
// keyed by the row's string index ("0", "1", ...), ordered by market cap.
type CompanyTickersResponse map[string]CompanyTickerRow

// CompanyTickerRow is one directory entry.
type CompanyTickerRow struct {
	CIK    int    `json:"cik_str"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}

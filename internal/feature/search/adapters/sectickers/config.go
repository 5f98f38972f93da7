// Package sectickers provides a client for the SEC company ticker directory.
package sectickers

import (
	"os"
	"time"
)

// Config holds configuration for the SEC ticker directory client.
type Config struct {
	TickersURL string        // Full URL of the company_tickers.json document
	UserAgent  string        // User-Agent header required by SEC fair-use policy
	Timeout    time.Duration // HTTP request timeout
}

// LoadConfig loads ticker directory configuration from environment variables,
// falling back to the public endpoint.
func LoadConfig() Config {
	cfg := Config{
		TickersURL: os.Getenv("SEC_TICKERS_URL"),
		UserAgent:  os.Getenv("SEC_USER_AGENT"),
		Timeout:    10 * time.Second,
	}
	if cfg.TickersURL == "" {
		cfg.TickersURL = "https://www.sec.gov/files/company_tickers.json"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "GovFundingView/1.0 (ops@example.com)"
	}
	return cfg
}

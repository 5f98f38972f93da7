// Package edgar provides a client for the SEC EDGAR XBRL company facts API.
package edgar

import (
	"os"
	"time"
)

// Config holds configuration for the SEC EDGAR API client.
type Config struct {
	BaseURL   string        // Base URL for the API (e.g., "https://data.sec.gov")
	UserAgent string        // User-Agent header required by SEC fair-use policy
	Timeout   time.Duration // HTTP request timeout
}

// LoadConfig loads SEC EDGAR configuration from environment variables,
// falling back to the public endpoint.
func LoadConfig() Config {
	cfg := Config{
		BaseURL:   os.Getenv("SEC_EDGAR_BASE_URL"),
		UserAgent: os.Getenv("SEC_USER_AGENT"),
		Timeout:   10 * time.Second,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://data.sec.gov"
	}
	if cfg.UserAgent == "" {
		// SEC rejects requests without a descriptive User-Agent
		cfg.UserAgent = "GovFundingView/1.0 (ops@example.com)"
	}
	return cfg
}

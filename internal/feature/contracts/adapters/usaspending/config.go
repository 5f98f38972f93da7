// Package usaspending provides a client for the USAspending award search API.
package usaspending

import (
	"os"
	"time"
)

// Config holds configuration for the USAspending API client.
type Config struct {
	BaseURL string        // Base URL for the API (e.g., "https://api.usaspending.gov")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads USAspending configuration from environment variables,
// falling back to the public endpoint. The API requires no key.
func LoadConfig() Config {
	cfg := Config{
		BaseURL: os.Getenv("USASPENDING_BASE_URL"),
		Timeout: 15 * time.Second,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.usaspending.gov"
	}
	return cfg
}

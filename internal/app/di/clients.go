// Package di provides dependency injection factories for creating application components.
package di

import (
	"govfunding_backend/internal/feature/contracts/adapters/usaspending"
	"govfunding_backend/internal/feature/marketcap/adapters/edgar"
	"govfunding_backend/internal/feature/marketcap/adapters/twelvedata"
	"govfunding_backend/internal/feature/search/adapters/sectickers"
	infrahttp "govfunding_backend/internal/platform/http"
	"govfunding_backend/internal/shared/ratelimiter"
)

// NewFilings creates a fully configured EdgarFilings with HTTP client.
// limiter enforces the SEC fair-use cap and is shared with NewTickerDirectory.
func NewFilings(limiter ratelimiter.RateLimiterInterface) *edgar.EdgarFilings {
	cfg := edgar.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return edgar.NewEdgarFilings(cfg, httpClient, limiter)
}

// NewMarket creates a fully configured TwelveDataMarket with HTTP client.
func NewMarket() *twelvedata.TwelveDataMarket {
	cfg := twelvedata.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return twelvedata.NewTwelveDataMarket(cfg, httpClient)
}

// NewAwardSearch creates a fully configured SpendingSearch with HTTP client.
func NewAwardSearch() *usaspending.SpendingSearch {
	cfg := usaspending.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return usaspending.NewSpendingSearch(cfg, httpClient)
}

// NewTickerDirectory creates a fully configured SECTickers with HTTP client.
func NewTickerDirectory(limiter ratelimiter.RateLimiterInterface) *sectickers.SECTickers {
	cfg := sectickers.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return sectickers.NewSECTickers(cfg, httpClient, limiter)
}

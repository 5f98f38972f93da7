// Package entity defines the domain models for the financials feature.
package entity

import (
	contractsentity "govfunding_backend/internal/feature/contracts/domain/entity"
	marketcapentity "govfunding_backend/internal/feature/marketcap/domain/entity"
)

// CompanyFinancials bundles the market-cap series and the government-contract
// exposure for one company, as served by the combined endpoint.
type CompanyFinancials struct {
	Ticker  string
	Company string
	Series  marketcapentity.MarketCapSeries
	Awards  []contractsentity.Award
}

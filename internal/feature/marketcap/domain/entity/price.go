package entity

import "time"

// PricePoint is one daily closing price for a symbol.
type PricePoint struct {
	TradeDate time.Time // trading day
	Close     float64   // closing price
}

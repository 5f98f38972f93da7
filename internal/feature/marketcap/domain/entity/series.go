package entity

import "time"

// MarketCapSeries holds three index-aligned sequences in ascending date
// order: one entry per share snapshot for which a price could be resolved.
type MarketCapSeries struct {
	Dates      []time.Time // snapshot report dates
	Shares     []float64   // shares outstanding at each date
	MarketCaps []float64   // shares × resolved closing price
}

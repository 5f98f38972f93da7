package usecase

import (
	"time"

	"govfunding_backend/internal/feature/marketcap/domain/entity"
)

// BuildMarketCapSeries はスナップショット（期末日の昇順）と価格インデックスを
// 結合し、日付・株式数・時価総額の3つの平行スライスを生成します。
// 価格が解決できない期末日はゼロ埋めせずスキップします。
func BuildMarketCapSeries(snapshots []entity.ShareSnapshot, prices *PriceIndex) entity.MarketCapSeries {
	series := entity.MarketCapSeries{
		Dates:      make([]time.Time, 0, len(snapshots)),
		Shares:     make([]float64, 0, len(snapshots)),
		MarketCaps: make([]float64, 0, len(snapshots)),
	}
	for _, s := range snapshots {
		price, ok := prices.PriceAsOf(s.ReportDate)
		if !ok {
			continue
		}
		series.Dates = append(series.Dates, s.ReportDate)
		series.Shares = append(series.Shares, s.Shares)
		series.MarketCaps = append(series.MarketCaps, s.Shares*price)
	}
	return series
}

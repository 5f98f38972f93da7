package usecase

import (
	"sort"
	"time"

	"govfunding_backend/internal/feature/marketcap/domain/entity"
)

// PriceIndex は日次株価系列に対する「指定日以前で最新の終値」検索を提供します。
type PriceIndex struct {
	points []entity.PricePoint
}

// NewPriceIndex は価格系列からインデックスを生成します。
// 入力順は問わず、内部では取引日の昇順に保持します。
func NewPriceIndex(points []entity.PricePoint) *PriceIndex {
	sorted := make([]entity.PricePoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TradeDate.Before(sorted[j].TradeDate)
	})
	return &PriceIndex{points: sorted}
}

// PriceAsOf は取引日が d 以前で最新の終値を返します。
// d が週末や祝日の場合は直前の営業日の終値に自然に解決されます。
// 該当する価格が存在しない場合（d が系列の先頭より前）は ok=false を返します。
func (ix *PriceIndex) PriceAsOf(d time.Time) (price float64, ok bool) {
	// d より後の最初の位置を二分探索し、その1つ手前が求める価格
	i := sort.Search(len(ix.points), func(i int) bool {
		return ix.points[i].TradeDate.After(d)
	})
	if i == 0 {
		return 0, false
	}
	return ix.points[i-1].Close, true
}

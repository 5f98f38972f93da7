// Package usecase は政府契約エクスポージャー算出のビジネスロジックを実装します。
package usecase

import (
	"sort"
	"time"

	"govfunding_backend/internal/feature/contracts/domain/entity"
)

// LargeAwardThreshold は「大型」契約とみなす契約金額（USD）の下限です。
const LargeAwardThreshold = 10_000_000

// normalizeOne は1行分のデフォルト解決とフラグ付与を行います。
// 不正な日付や金額欠落は行単位で吸収し、バッチ全体は落としません。
func normalizeOne(r entity.RawAward) entity.Award {
	a := entity.Award{
		ID:        r.ID,
		Recipient: r.Recipient,
		Agency:    r.Agency,
		Type:      r.Type,
	}
	if r.Amount != nil {
		a.Amount = *r.Amount
	}
	a.IsLarge = a.Amount >= LargeAwardThreshold
	if t, err := time.Parse("2006-01-02", r.StartDate); err == nil {
		a.StartDate = t
	}
	return a
}

// NormalizeAwards は生の検索結果行を正規化し、開始日の降順（最新が先頭）で
// 返します。開始日が不明な行はゼロ値のまま末尾に並びます。
func NormalizeAwards(rows []entity.RawAward) []entity.Award {
	awards := make([]entity.Award, 0, len(rows))
	for _, r := range rows {
		awards = append(awards, normalizeOne(r))
	}
	sort.SliceStable(awards, func(i, j int) bool {
		return awards[i].StartDate.After(awards[j].StartDate)
	})
	return awards
}

// FilterAwardsForTicker は軽量版の正規化です。金額が正の行だけを残して
// 銘柄コードを付与し、入力順を維持します（ソートなし）。
func FilterAwardsForTicker(ticker string, rows []entity.RawAward) []entity.Award {
	awards := make([]entity.Award, 0, len(rows))
	for _, r := range rows {
		if r.Amount == nil || *r.Amount <= 0 {
			continue
		}
		a := normalizeOne(r)
		a.Ticker = ticker
		awards = append(awards, a)
	}
	return awards
}

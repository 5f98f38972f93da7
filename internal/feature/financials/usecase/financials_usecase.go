// Package usecase は時価総額と政府契約の結合レスポンスを組み立てます。
package usecase

import (
	"context"

	contractsentity "govfunding_backend/internal/feature/contracts/domain/entity"
	"govfunding_backend/internal/feature/financials/domain/entity"
	marketcapentity "govfunding_backend/internal/feature/marketcap/domain/entity"
)

// MarketCapProvider は時価総額ヒストリーの算出を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketCapProvider interface {
	GetHistory(ctx context.Context, ticker, cik string) (marketcapentity.MarketCapSeries, error)
}

// ContractsProvider は政府契約エクスポージャーの取得を抽象化します。
// 失敗時は空リストへ縮退するためエラーを返しません。
type ContractsProvider interface {
	GetExposure(ctx context.Context, ticker, company string) []contractsentity.Award
}

// FinancialsUsecase は両フィーチャーの出力を1つのレスポンスに統合します。
type FinancialsUsecase struct {
	marketcap MarketCapProvider
	contracts ContractsProvider
}

// NewFinancialsUsecase はFinancialsUsecaseの新しいインスタンスを生成します。
func NewFinancialsUsecase(marketcap MarketCapProvider, contracts ContractsProvider) *FinancialsUsecase {
	return &FinancialsUsecase{marketcap: marketcap, contracts: contracts}
}

// GetFinancials は時価総額ヒストリーと契約リストを取得して統合します。
// 時価総額側の失敗（株式数データ無し・上流エラー）はリクエスト全体の失敗です。
// 契約側は補助的なエンリッチメントであり、取得できなくても空リストで返します。
func (u *FinancialsUsecase) GetFinancials(ctx context.Context, ticker, cik, company string) (entity.CompanyFinancials, error) {
	series, err := u.marketcap.GetHistory(ctx, ticker, cik)
	if err != nil {
		return entity.CompanyFinancials{}, err
	}

	awards := u.contracts.GetExposure(ctx, ticker, company)

	return entity.CompanyFinancials{
		Ticker:  ticker,
		Company: company,
		Series:  series,
		Awards:  awards,
	}, nil
}

package usecase

import (
	"context"
	"time"

	"govfunding_backend/internal/feature/marketcap/domain/entity"
)

// FilingsRepository は規制当局への提出書類（企業ファクト）の取得を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type FilingsRepository interface {
	// GetCompanyFacts はCIKで指定された企業のファクトツリーを取得します。
	GetCompanyFacts(ctx context.Context, cik string) (entity.CompanyFacts, error)
}

// MarketRepository は外部APIからの日次株価データ取得を抽象化します。
type MarketRepository interface {
	// GetDailyCloses は start 以降の日次終値系列を取得します。
	GetDailyCloses(ctx context.Context, symbol string, start time.Time) ([]entity.PricePoint, error)
}

// MarketCapUsecase は提出書類の株式数と日次株価を結合し、
// 時価総額の時系列を算出するユースケースです。
type MarketCapUsecase struct {
	filings FilingsRepository
	market  MarketRepository
}

// NewMarketCapUsecase はMarketCapUsecaseの新しいインスタンスを生成します。
func NewMarketCapUsecase(filings FilingsRepository, market MarketRepository) *MarketCapUsecase {
	return &MarketCapUsecase{filings: filings, market: market}
}

// GetHistory は指定された銘柄の時価総額ヒストリーを算出します。
// 株価は最古のスナップショット日以降の系列のみ取得します。
// 株式数データが存在しない場合は ErrNoShareData を返します。
func (u *MarketCapUsecase) GetHistory(ctx context.Context, ticker, cik string) (entity.MarketCapSeries, error) {
	facts, err := u.filings.GetCompanyFacts(ctx, cik)
	if err != nil {
		return entity.MarketCapSeries{}, err
	}

	snapshots, err := ExtractShareSnapshots(facts)
	if err != nil {
		return entity.MarketCapSeries{}, err
	}

	points, err := u.market.GetDailyCloses(ctx, ticker, snapshots[0].ReportDate)
	if err != nil {
		return entity.MarketCapSeries{}, err
	}

	return BuildMarketCapSeries(snapshots, NewPriceIndex(points)), nil
}

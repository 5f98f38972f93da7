package usecase

import (
	"context"
	"log/slog"
	"strings"

	"govfunding_backend/internal/feature/contracts/domain/entity"
)

// AwardSearchLimit は1回の検索で取得する契約レコードの上限件数です。
const AwardSearchLimit = 50

// etfSuffixes はファンドとみなす銘柄コードの末尾パターンです。
// ETF等は直接の政府契約エクスポージャーを持たない前提で検索対象外とします。
var etfSuffixes = []string{"QQQ", "SPY", "ETF"}

// AwardSearchRepository は連邦支出検索APIを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type AwardSearchRepository interface {
	// SearchAwards は受給者名で契約レコードを検索します。
	SearchAwards(ctx context.Context, recipient string, limit int) ([]entity.RawAward, error)
}

// ContractsUsecase は企業の政府契約エクスポージャーを取得するユースケースです。
type ContractsUsecase struct {
	awards AwardSearchRepository
}

// NewContractsUsecase はContractsUsecaseの新しいインスタンスを生成します。
func NewContractsUsecase(awards AwardSearchRepository) *ContractsUsecase {
	return &ContractsUsecase{awards: awards}
}

// IsETFLikeSymbol は銘柄コードが事業会社ではなくファンドと推定されるかを
// 判定します。
func IsETFLikeSymbol(ticker string) bool {
	t := strings.ToUpper(ticker)
	for _, suffix := range etfSuffixes {
		if strings.HasSuffix(t, suffix) {
			return true
		}
	}
	return false
}

// GetExposure は企業名で契約を検索し、正規化済みリストを返します。
// ファンド系の銘柄は検索せずに空リストを返します。契約情報は補助的な
// エンリッチメントなので、検索失敗時もエラーにせず空リストへ縮退します。
func (u *ContractsUsecase) GetExposure(ctx context.Context, ticker, company string) []entity.Award {
	if IsETFLikeSymbol(ticker) {
		return []entity.Award{}
	}

	rows, err := u.awards.SearchAwards(ctx, company, AwardSearchLimit)
	if err != nil {
		slog.Warn("award search failed, serving empty contract list",
			"ticker", ticker, "company", company, "error", err)
		return []entity.Award{}
	}
	return NormalizeAwards(rows)
}

// Package usecase は銘柄検索のビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"govfunding_backend/internal/feature/search/domain/entity"
)

// MaxResults は1回の検索で返す候補の最大件数です。
const MaxResults = 8

// TickerDirectoryRepository は銘柄ディレクトリの取得を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type TickerDirectoryRepository interface {
	ListCompanies(ctx context.Context) ([]entity.Company, error)
}

// SearchUsecase はオートコンプリート用の銘柄検索ユースケースです。
type SearchUsecase struct {
	directory TickerDirectoryRepository
}

// NewSearchUsecase はSearchUsecaseの新しいインスタンスを生成します。
func NewSearchUsecase(directory TickerDirectoryRepository) *SearchUsecase {
	return &SearchUsecase{directory: directory}
}

// Search は銘柄コードまたは社名にクエリを含む企業を、ディレクトリの順序
// （時価総額順）を保ったまま最大MaxResults件返します。
// 大文字小文字は区別しません。
func (u *SearchUsecase) Search(ctx context.Context, query string) ([]entity.Company, error) {
	q := strings.ToUpper(strings.TrimSpace(query))

	companies, err := u.directory.ListCompanies(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]entity.Company, 0, MaxResults)
	for _, c := range companies {
		if strings.Contains(strings.ToUpper(c.Ticker), q) ||
			strings.Contains(strings.ToUpper(c.Title), q) {
			matches = append(matches, c)
			if len(matches) == MaxResults {
				break
			}
		}
	}
	return matches, nil
}

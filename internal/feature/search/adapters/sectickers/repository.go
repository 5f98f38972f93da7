package sectickers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"

	"govfunding_backend/internal/feature/search/adapters/sectickers/dto"
	"govfunding_backend/internal/feature/search/domain/entity"
	"govfunding_backend/internal/feature/search/usecase"
	"govfunding_backend/internal/shared/ratelimiter"
)

// SECTickers はSECの銘柄ディレクトリを取得するTickerDirectoryRepository実装です。
type SECTickers struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// SECTickersがTickerDirectoryRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.TickerDirectoryRepository = (*SECTickers)(nil)

// NewSECTickers は指定された設定とHTTPクライアントでSECTickersの
// 新しいインスタンスを生成します。limiterはEDGARクライアントと共有します。
func NewSECTickers(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *SECTickers {
	return &SECTickers{cfg: cfg, client: client, limiter: limiter}
}

// ListCompanies は銘柄ディレクトリ全体を取得します。
// JSONオブジェクトのキー（"0","1",...）は時価総額順なので、
// 数値順に並べ直して元の順序を復元します。
func (s *SECTickers) ListCompanies(ctx context.Context) ([]entity.Company, error) {
	s.limiter.WaitIfNeeded()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.TickersURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("sec tickers http %d", res.StatusCode)
	}

	var body dto.CompanyTickersResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	keys := make([]int, 0, len(body))
	rows := make(map[int]dto.CompanyTickerRow, len(body))
	for k, row := range body {
		i, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		keys = append(keys, i)
		rows[i] = row
	}
	sort.Ints(keys)

	companies := make([]entity.Company, 0, len(keys))
	for _, i := range keys {
		row := rows[i]
		companies = append(companies, entity.Company{
			CIK:    row.CIK,
			Ticker: row.Ticker,
			Title:  row.Title,
		})
	}
	return companies, nil
}

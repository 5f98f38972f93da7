package edgar

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"govfunding_backend/internal/feature/marketcap/adapters/edgar/dto"
	"govfunding_backend/internal/feature/marketcap/domain/entity"
	"govfunding_backend/internal/feature/marketcap/usecase"
	"govfunding_backend/internal/shared/ratelimiter"
)

// EdgarFilings はSEC EDGAR companyfacts APIから企業ファクトを取得する
// FilingsRepository実装です。
type EdgarFilings struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// EdgarFilingsがFilingsRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.FilingsRepository = (*EdgarFilings)(nil)

// NewEdgarFilings は指定された設定とHTTPクライアントでEdgarFilingsの
// 新しいインスタンスを生成します。limiterはSECフェアユース上限の遵守に使います。
func NewEdgarFilings(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *EdgarFilings {
	return &EdgarFilings{cfg: cfg, client: client, limiter: limiter}
}

// padCIK はCIKを10桁にゼロ埋めします。
func padCIK(cik string) string {
	cik = strings.TrimLeft(cik, "0")
	for len(cik) < 10 {
		cik = "0" + cik
	}
	return cik
}

// GetCompanyFacts はCIKで指定された企業のファクトツリーを取得し、
// 型付きのentity.CompanyFactsに変換して返します。
func (e *EdgarFilings) GetCompanyFacts(ctx context.Context, cik string) (entity.CompanyFacts, error) {
	e.limiter.WaitIfNeeded()

	u := fmt.Sprintf("%s/api/xbrl/companyfacts/CIK%s.json", e.cfg.BaseURL, padCIK(cik))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	// SECはUser-Agentヘッダーのないリクエストを拒否する
	req.Header.Set("User-Agent", e.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	res, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("edgar http %d", res.StatusCode)
	}

	var body dto.CompanyFactsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	// DTOをドメインのファクトツリーに変換
	facts := make(entity.CompanyFacts, len(body.Facts))
	for taxonomy, tags := range body.Facts {
		converted := make(map[string]entity.FactTag, len(tags))
		for tag, concept := range tags {
			units := make(map[string][]entity.FactEntry, len(concept.Units))
			for unit, values := range concept.Units {
				entries := make([]entity.FactEntry, 0, len(values))
				for _, v := range values {
					entries = append(entries, entity.FactEntry{
						End:  v.End,
						Val:  v.Val,
						Form: v.Form,
					})
				}
				units[unit] = entries
			}
			converted[tag] = entity.FactTag{Units: units}
		}
		facts[taxonomy] = converted
	}
	return facts, nil
}

package usaspending

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"govfunding_backend/internal/feature/contracts/adapters/usaspending/dto"
	"govfunding_backend/internal/feature/contracts/domain/entity"
	"govfunding_backend/internal/feature/contracts/usecase"
)

// contractTypeCodes は検索対象の契約種別（definitive contract等）です。
var contractTypeCodes = []string{"A", "B", "C", "D"}

// searchFields はレスポンスに含めるフィールドの表示名リストです。
var searchFields = []string{
	"Award ID",
	"Recipient Name",
	"Award Amount",
	"Awarding Agency",
	"Start Date",
	"Contract Award Type",
}

// SpendingSearch はUSAspending APIから契約レコードを検索する
// AwardSearchRepository実装です。
type SpendingSearch struct {
	cfg    Config
	client *http.Client
}

// SpendingSearchがAwardSearchRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.AwardSearchRepository = (*SpendingSearch)(nil)

// NewSpendingSearch は指定された設定とHTTPクライアントでSpendingSearchの
// 新しいインスタンスを生成します。
func NewSpendingSearch(cfg Config, client *http.Client) *SpendingSearch {
	return &SpendingSearch{cfg: cfg, client: client}
}

// SearchAwards は受給者名で契約レコードを検索し、生の行のまま返します。
// デフォルト解決やソートはusecase層の責務です。
func (s *SpendingSearch) SearchAwards(ctx context.Context, recipient string, limit int) ([]entity.RawAward, error) {
	reqBody := dto.AwardSearchRequest{
		Filters: dto.AwardSearchFilters{
			RecipientSearchText: []string{recipient},
			AwardTypeCodes:      contractTypeCodes,
		},
		Fields: searchFields,
		Limit:  limit,
		Page:   1,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/api/v2/search/spending_by_award/", s.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

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
		return nil, fmt.Errorf("usaspending http %d", res.StatusCode)
	}

	var body dto.AwardSearchResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	rows := make([]entity.RawAward, 0, len(body.Results))
	for _, r := range body.Results {
		rows = append(rows, entity.RawAward{
			ID:        r.AwardID,
			Recipient: r.RecipientName,
			Amount:    r.AwardAmount,
			Agency:    r.AwardingAgency,
			Type:      r.AwardType,
			StartDate: r.StartDate,
		})
	}
	return rows, nil
}

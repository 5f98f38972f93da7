// Package handler はfinancialsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"govfunding_backend/internal/api"
	"govfunding_backend/internal/feature/financials/domain/entity"
	"govfunding_backend/internal/feature/financials/transport/http/dto"
	marketcapusecase "govfunding_backend/internal/feature/marketcap/usecase"
)

// FinancialsUsecase は統合レスポンス組み立てのユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type FinancialsUsecase interface {
	GetFinancials(ctx context.Context, ticker, cik, company string) (entity.CompanyFinancials, error)
}

// FinancialsHandler は統合ビューのHTTPリクエストを処理します。
type FinancialsHandler struct {
	uc FinancialsUsecase
}

// NewFinancialsHandler は指定されたusecaseでFinancialsHandlerの新しい
// インスタンスを生成します。
func NewFinancialsHandler(uc FinancialsUsecase) *FinancialsHandler {
	return &FinancialsHandler{uc: uc}
}

// GetFinancialsHandler は銘柄コードとCIKを受け取り、時価総額ヒストリーと
// 政府契約リストの統合ペイロードをJSONで返します。
//
// エンドポイント例:
// GET /get_financials?ticker=AAPL&cik=320193&company=Apple+Inc.
func (h *FinancialsHandler) GetFinancialsHandler(c *gin.Context) {
	ticker := strings.ToUpper(c.Query("ticker"))
	cik := c.Query("cik")
	// 社名が未指定の場合は受給者検索にティッカーを使う
	company := c.DefaultQuery("company", ticker)

	if ticker == "" || cik == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "ticker and cik are required"})
		return
	}

	fin, err := h.uc.GetFinancials(c.Request.Context(), ticker, cik, company)
	if err != nil {
		if errors.Is(err, marketcapusecase.ErrNoShareData) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	// データをフォーマット
	out := dto.FinancialsResponse{
		Labels:       make([]string, 0, len(fin.Series.Dates)),
		Shares:       fin.Series.Shares,
		MarketCap:    fin.Series.MarketCaps,
		GovContracts: make([]dto.AwardResponse, 0, len(fin.Awards)),
		Ticker:       fin.Ticker,
		Company:      fin.Company,
	}
	if out.Shares == nil {
		out.Shares = []float64{}
	}
	if out.MarketCap == nil {
		out.MarketCap = []float64{}
	}
	for _, d := range fin.Series.Dates {
		out.Labels = append(out.Labels, d.UTC().Format("2006-01-02"))
	}
	for _, a := range fin.Awards {
		r := dto.AwardResponse{
			ID:        a.ID,
			Recipient: a.Recipient,
			Amount:    a.Amount,
			Agency:    a.Agency,
			Type:      a.Type,
			IsLarge:   a.IsLarge,
		}
		// 日付不明の行はソートキーを露出させず空文字で返す
		if !a.StartDate.IsZero() {
			r.StartDate = a.StartDate.UTC().Format("2006-01-02")
		}
		out.GovContracts = append(out.GovContracts, r)
	}

	c.JSON(http.StatusOK, out)
}

// Package handler はsearchフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"govfunding_backend/internal/api"
	"govfunding_backend/internal/feature/search/domain/entity"
	"govfunding_backend/internal/feature/search/transport/http/dto"
)

// SearchUsecase は銘柄検索のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SearchUsecase interface {
	Search(ctx context.Context, query string) ([]entity.Company, error)
}

// SearchHandler はオートコンプリート検索のHTTPリクエストを処理します。
type SearchHandler struct {
	uc SearchUsecase
}

// NewSearchHandler は指定されたusecaseでSearchHandlerの新しいインスタンスを
// 生成します。
func NewSearchHandler(uc SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Search はクエリ文字列にマッチする銘柄候補をJSON配列で返します。
//
// エンドポイント例:
// GET /search?q=LOCK
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")

	companies, err := h.uc.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.SearchResultResponse, 0, len(companies))
	for _, company := range companies {
		out = append(out, dto.SearchResultResponse{
			Ticker: company.Ticker,
			Name:   company.Title,
			CIK:    company.CIK,
		})
	}

	c.JSON(http.StatusOK, out)
}

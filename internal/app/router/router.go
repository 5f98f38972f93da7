// Package router はアプリケーションのHTTPルーティングを構成します。
package router

import (
	financialshandler "govfunding_backend/internal/feature/financials/transport/handler"
	searchhandler "govfunding_backend/internal/feature/search/transport/handler"
	"govfunding_backend/internal/interface/handler"

	"github.com/gin-gonic/gin"
)

func NewRouter(financials *financialshandler.FinancialsHandler,
	search *searchhandler.SearchHandler) *gin.Engine {
	r := gin.Default()
	r.Use(RequestID())

	// 導通確認用
	r.GET("/healthz", handler.Health)

	// 銘柄オートコンプリート
	r.GET("/search", search.Search)
	// 時価総額ヒストリー + 政府契約の統合ビュー
	r.GET("/get_financials", financials.GetFinancialsHandler)

	return r
}

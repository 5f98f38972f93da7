// Package handler provides shared application-level HTTP handlers.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health はロードバランサー向けの導通確認エンドポイントです。
// 上流API（SEC・Twelve Data・USAspending）には一切アクセスしません。
func Health(c *gin.Context) {
	// キャッシュされないように明示
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "govfunding_backend"})
	}
}

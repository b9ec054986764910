package http

import (
	"github.com/gin-gonic/gin"

	"social-admin-dashboard/internal/middleware"
	screenhttp "social-admin-dashboard/internal/screen/delivery/http"
	"social-admin-dashboard/internal/token"
)

// RegisterRoutes maps the transaction ledger screen and the supply and
// sale endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	screenhttp.RegisterRoutes(rg, screenhttp.New[token.Transaction](h.l, h.uc), mw)

	rg.GET("/stats", mw.Auth(), h.Stats)
	rg.POST("/mint", mw.Auth(), h.Mint)
	rg.POST("/burn", mw.Auth(), h.Burn)

	sale := rg.Group("/sale", mw.Auth())
	{
		sale.GET("/history", h.PriceHistory)
		sale.PUT("", h.UpdateSale)
	}
}

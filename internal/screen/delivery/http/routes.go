package http

import (
	"github.com/gin-gonic/gin"

	"social-admin-dashboard/internal/middleware"
)

// RegisterRoutes maps the screen endpoints under rg. Every route needs a session.
func RegisterRoutes[T any](rg *gin.RouterGroup, h *handler[T], mw middleware.Middleware) {
	s := rg.Group("/screen", mw.Auth())
	{
		s.GET("", h.View)
		s.PUT("/filters", h.SetFilters)
		s.PUT("/page", h.SetPage)
		s.POST("/reload", h.Reload)
		s.POST("/detail/:id", h.OpenDetail)
		s.DELETE("/detail", h.CloseDetail)
	}

	rg.POST("/:id/actions/:action", mw.Auth(), h.Act)

	confirmations := rg.Group("/confirmations", mw.Auth())
	{
		confirmations.POST("/:cid", h.Confirm)
		confirmations.DELETE("/:cid", h.Cancel)
	}
}

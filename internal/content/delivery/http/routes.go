package http

import (
	"github.com/gin-gonic/gin"

	"social-admin-dashboard/internal/content"
	"social-admin-dashboard/internal/middleware"
	screenhttp "social-admin-dashboard/internal/screen/delivery/http"
)

// RegisterRoutes maps the content screen, the update form and moderator notes.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	screenhttp.RegisterRoutes(rg, screenhttp.New[content.ContentItem](h.l, h.uc), mw)

	rg.GET("/:id", mw.Auth(), h.Detail)
	rg.PATCH("/:id", mw.Auth(), h.Update)
	rg.GET("/:id/reports", mw.Auth(), h.Reports)
	rg.GET("/:id/notes", mw.Auth(), h.Notes)
	rg.POST("/:id/notes", mw.Auth(), h.AddNote)
}

package http

import (
	"github.com/gin-gonic/gin"

	"social-admin-dashboard/internal/middleware"
	screenhttp "social-admin-dashboard/internal/screen/delivery/http"
	"social-admin-dashboard/internal/user"
)

// RegisterRoutes maps the user screen and the profile page. The user list is
// read-only, so the action routes answer with a "no actions" notice.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	screenhttp.RegisterRoutes(rg, screenhttp.New[user.User](h.l, h.uc), mw)

	rg.GET("/:id/profile", mw.Auth(), h.Profile)
}

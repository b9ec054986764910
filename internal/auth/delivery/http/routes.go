package http

import (
	"github.com/gin-gonic/gin"

	"social-admin-dashboard/internal/middleware"
)

// RegisterRoutes maps the sign-in flow. Only session routes need Auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/signin", h.SignIn)
	rg.POST("/signup", h.SignUp)
	rg.POST("/verify-email", h.VerifyEmail)
	rg.POST("/resend-otp", h.ResendOTP)
	rg.GET("/google/login", h.GoogleLogin)
	rg.GET("/google/callback", h.GoogleCallback)

	rg.GET("/session", mw.Auth(), h.Session)
	rg.POST("/signout", mw.Auth(), h.SignOut)
}

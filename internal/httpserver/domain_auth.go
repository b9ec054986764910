package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"social-admin-dashboard/internal/auth"
	authHTTP "social-admin-dashboard/internal/auth/delivery/http"
	"social-admin-dashboard/internal/auth/repository/authapi"
	"social-admin-dashboard/internal/auth/repository/session"
	authUC "social-admin-dashboard/internal/auth/usecase"
	"social-admin-dashboard/internal/middleware"
)

// newAuthUseCase builds sign-in and sessions. Every closer is told when a
// session ends, whether by sign-out or expiry.
func (srv *HTTPServer) newAuthUseCase(closers ...auth.SessionCloser) auth.UseCase {
	accounts := authapi.New(srv.backend, srv.l)
	sessions := session.New(srv.session.Size, srv.session.TTL, func(id string) {
		for _, c := range closers {
			c.CloseSession(id)
		}
	})

	return authUC.New(srv.l, accounts, sessions, srv.scope, srv.google, authUC.Options{
		SessionTTL:          srv.session.TTL,
		LoginAttemptsPerMin: srv.auth.LoginAttemptsPerMin,
	}, closers...)
}

// setupAuthDomain registers /api/v1/auth.
func (srv *HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, uc auth.UseCase) {
	h := authHTTP.New(srv.l, uc, srv.cookie)
	authHTTP.RegisterRoutes(api.Group("/auth"), h, mw)

	if srv.google.Enabled() {
		srv.l.Infof(ctx, "Auth domain registered (credentials, google)")
	} else {
		srv.l.Infof(ctx, "Auth domain registered (credentials)")
	}
}

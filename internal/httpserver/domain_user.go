package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	contentRepo "social-admin-dashboard/internal/content/repository"
	"social-admin-dashboard/internal/middleware"
	tokenRepo "social-admin-dashboard/internal/token/repository"
	"social-admin-dashboard/internal/user"
	userHTTP "social-admin-dashboard/internal/user/delivery/http"
	"social-admin-dashboard/internal/user/repository/authapi"
	userUC "social-admin-dashboard/internal/user/usecase"
)

func (srv *HTTPServer) newUserUseCase(reels contentRepo.ReelRepository, ledger tokenRepo.LedgerRepository) user.UseCase {
	repo := authapi.New(srv.backend, srv.l)
	return userUC.New(repo, reels, ledger, srv.l, userUC.Options{
		PageSize:     srv.screens.UserPageSize,
		ReelLimit:    srv.screens.ContentLimit,
		Debounce:     srv.screens.Debounce,
		RegistrySize: srv.screens.RegistrySize,
		RegistryTTL:  srv.screens.RegistryTTL,
	})
}

// setupUserDomain registers /api/v1/users.
func (srv *HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, uc user.UseCase) {
	h := userHTTP.New(srv.l, uc)
	userHTTP.RegisterRoutes(api.Group("/users"), h, mw)

	srv.l.Infof(ctx, "User domain registered")
}

package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"social-admin-dashboard/internal/middleware"
	"social-admin-dashboard/internal/token"
	tokenHTTP "social-admin-dashboard/internal/token/delivery/http"
	tokenRepo "social-admin-dashboard/internal/token/repository"
	tokenUC "social-admin-dashboard/internal/token/usecase"
)

func (srv *HTTPServer) newTokenUseCase(ledger tokenRepo.Repository) token.UseCase {
	return tokenUC.New(ledger, srv.l, tokenUC.Options{
		PageSize:     srv.screens.TxPageSize,
		Debounce:     srv.screens.Debounce,
		RegistrySize: srv.screens.RegistrySize,
		RegistryTTL:  srv.screens.RegistryTTL,
		SettleDelay:  srv.tokenCfg.SettleDelay,
	})
}

// setupTokenDomain registers /api/v1/tokens. The ledger is held in memory.
func (srv *HTTPServer) setupTokenDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, uc token.UseCase) {
	h := tokenHTTP.New(srv.l, uc)
	tokenHTTP.RegisterRoutes(api.Group("/tokens"), h, mw)

	srv.l.Infof(ctx, "Token domain registered")
}

package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"social-admin-dashboard/internal/content"
	contentHTTP "social-admin-dashboard/internal/content/delivery/http"
	contentRepo "social-admin-dashboard/internal/content/repository"
	contentMemory "social-admin-dashboard/internal/content/repository/memory"
	contentUC "social-admin-dashboard/internal/content/usecase"
	"social-admin-dashboard/internal/middleware"
)

// newContentUseCase keeps moderator notes in memory next to the backend reels.
func (srv *HTTPServer) newContentUseCase(reels contentRepo.Repository) content.UseCase {
	return contentUC.New(reels, contentMemory.New(srv.l), srv.l, contentUC.Options{
		PageSize:     srv.screens.ContentPerPage,
		RemoteLimit:  srv.screens.ContentLimit,
		Debounce:     srv.screens.Debounce,
		ConfirmTTL:   srv.screens.ConfirmTTL,
		RegistrySize: srv.screens.RegistrySize,
		RegistryTTL:  srv.screens.RegistryTTL,
	})
}

// setupContentDomain registers /api/v1/content.
func (srv *HTTPServer) setupContentDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, uc content.UseCase) {
	h := contentHTTP.New(srv.l, uc)
	contentHTTP.RegisterRoutes(api.Group("/content"), h, mw)

	srv.l.Infof(ctx, "Content domain registered")
}

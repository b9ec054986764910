package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"social-admin-dashboard/internal/content/repository/reelapi"
	"social-admin-dashboard/internal/middleware"
	"social-admin-dashboard/internal/model"
	tokenMemory "social-admin-dashboard/internal/token/repository/memory"
	"social-admin-dashboard/pkg/response"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()

	// Reels and the ledger back both their own screens and the user profile.
	reels := reelapi.New(srv.backend, srv.l)
	ledger := tokenMemory.New(srv.l)

	// Screen domains first: auth closes their screens when a session ends.
	contentUC := srv.newContentUseCase(reels)
	userUC := srv.newUserUseCase(reels, ledger)
	tokenUC := srv.newTokenUseCase(ledger)
	authUC := srv.newAuthUseCase(contentUC, userUC, tokenUC)

	mw := middleware.New(srv.l, authUC, srv.cookie, srv.cors)

	srv.registerMiddlewares(ctx, mw)
	srv.registerSystemRoutes()

	api := srv.gin.Group("/api/v1")
	srv.setupAuthDomain(ctx, api, mw, authUC)
	srv.setupContentDomain(ctx, api, mw, contentUC)
	srv.setupUserDomain(ctx, api, mw, userUC)
	srv.setupTokenDomain(ctx, api, mw, tokenUC)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(ctx context.Context, mw middleware.Middleware) {
	srv.gin.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err := fmt.Errorf("panic: %v", recovered)
		srv.l.Errorf(c.Request.Context(), "httpserver.Recovery: %v", err)
		response.InternalError(c, err)
	}))
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.Logger())
	srv.gin.Use(mw.CORS())

	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production, origins %v", srv.cors.AllowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

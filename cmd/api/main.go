package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"social-admin-dashboard/config"
	_ "social-admin-dashboard/docs" // Swagger docs
	"social-admin-dashboard/internal/httpserver"
	"social-admin-dashboard/pkg/backend"
	"social-admin-dashboard/pkg/googleauth"
	"social-admin-dashboard/pkg/log"
	"social-admin-dashboard/pkg/scope"
)

// @title       Social Admin Dashboard API
// @description Moderation, user and token administration screens over the social platform backend.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey Bearer
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Social Admin Dashboard...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.URL)

	// 3. Platform backend client
	backendClient := backend.NewClient(cfg.Backend.URL,
		backend.WithTimeout(cfg.Backend.Timeout),
		backend.WithRateLimit(cfg.Backend.RateLimitPerSec, cfg.Backend.RateLimitBurst),
	)

	// 4. Session tokens
	scopeManager := scope.New(cfg.Session.Secret, cfg.Session.Issuer, cfg.Session.TTL)

	// 5. Google sign-in (optional)
	googleClient := googleauth.New(googleauth.Config{
		ClientID:     cfg.GoogleOAuth.ClientID,
		ClientSecret: cfg.GoogleOAuth.ClientSecret,
		RedirectURL:  cfg.GoogleOAuth.RedirectURL,
	})
	if googleClient.Enabled() {
		logger.Info(ctx, "Google sign-in enabled")
	} else {
		logger.Warn(ctx, "Google sign-in skipped: GOOGLE_OAUTH_CLIENT_ID is missing")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Backend:     backendClient,
		Scope:       scopeManager,
		Google:      googleClient,
		Session:     cfg.Session,
		Cookie:      cfg.Cookie,
		CORS:        cfg.CORS,
		Auth:        cfg.Auth,
		Screens:     cfg.Screens,
		Tokens:      cfg.Tokens,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

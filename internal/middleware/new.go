package middleware

import (
	"context"

	"social-admin-dashboard/config"
	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/pkg/log"
)

// Authenticator resolves a dashboard session token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (model.Session, error)
}

type Middleware struct {
	l            log.Logger
	auth         Authenticator
	cookieConfig config.CookieConfig
	corsConfig   config.CORSConfig
}

func New(l log.Logger, auth Authenticator, cookieConfig config.CookieConfig, corsConfig config.CORSConfig) Middleware {
	return Middleware{
		l:            l,
		auth:         auth,
		cookieConfig: cookieConfig,
		corsConfig:   corsConfig,
	}
}

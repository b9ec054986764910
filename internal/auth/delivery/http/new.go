package http

import (
	"social-admin-dashboard/config"
	"social-admin-dashboard/internal/auth"
	"social-admin-dashboard/pkg/log"
)

type handler struct {
	l      log.Logger
	uc     auth.UseCase
	cookie config.CookieConfig
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase, cookie config.CookieConfig) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		cookie: cookie,
	}
}

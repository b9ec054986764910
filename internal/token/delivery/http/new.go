package http

import (
	"social-admin-dashboard/internal/token"
	"social-admin-dashboard/pkg/log"
)

type handler struct {
	l  log.Logger
	uc token.UseCase
}

// New creates a new HTTP handler for the token domain.
func New(l log.Logger, uc token.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

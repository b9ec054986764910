package http

import (
	"context"

	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/internal/screen"
	"social-admin-dashboard/pkg/log"
)

// Binder hands out the calling session's screen.
type Binder[T any] interface {
	Bind(ctx context.Context, sc model.Scope) *screen.Screen[T]
}

type handler[T any] struct {
	l      log.Logger
	binder Binder[T]
}

// New creates the screen handler shared by every list domain.
func New[T any](l log.Logger, binder Binder[T]) *handler[T] {
	return &handler[T]{
		l:      l,
		binder: binder,
	}
}

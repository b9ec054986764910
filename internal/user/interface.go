package user

import (
	"context"

	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/internal/screen"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Bind(ctx context.Context, sc model.Scope) *screen.Screen[User]
	CloseSession(sessionID string) int
	Profile(ctx context.Context, sc model.Scope, input ProfileInput) (ProfileOutput, error)
}

package content

import (
	"context"

	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/internal/screen"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Screen
	Bind(ctx context.Context, sc model.Scope) *screen.Screen[ContentItem]
	CloseSession(sessionID string) int

	// Moderation
	Detail(ctx context.Context, sc model.Scope, id string) (ContentItem, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (screen.Outcome, error)
	SetStatus(ctx context.Context, sc model.Scope, id, status string) error
	Delete(ctx context.Context, sc model.Scope, id string) error
	Reports(ctx context.Context, sc model.Scope, id string) (ReportsOutput, error)

	// Notes
	Notes(ctx context.Context, sc model.Scope, contentID string) ([]Note, error)
	AddNote(ctx context.Context, sc model.Scope, input AddNoteInput) (Note, error)
}

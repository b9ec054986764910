package repository

import (
	"context"

	"social-admin-dashboard/internal/content"
)

// Repository is the composed interface for the content domain data store.
type Repository interface {
	ReelRepository
	ReportRepository
}

// ReelRepository defines all data access methods for reels.
type ReelRepository interface {
	ListReels(ctx context.Context, opt ListReelsOptions) ([]content.ContentItem, int, error)
	GetReel(ctx context.Context, opt GetReelOptions) (content.ContentItem, error)
	PatchReel(ctx context.Context, opt PatchReelOptions) error
	DeleteReel(ctx context.Context, opt DeleteReelOptions) error
}

// NoteRepository keeps moderator notes. Notes live on the dashboard, not the
// backend, so no token is needed.
type NoteRepository interface {
	ListNotes(ctx context.Context, opt ListNotesOptions) ([]content.Note, error)
	CreateNote(ctx context.Context, opt CreateNoteOptions) (content.Note, error)
}

// ReportRepository reads user reports filed against reels.
type ReportRepository interface {
	ListReports(ctx context.Context, opt GetReelOptions) ([]content.Report, int, error)
}

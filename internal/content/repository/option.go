package repository

import "social-admin-dashboard/internal/content"

// ListReelsOptions holds pagination parameters for listing reels.
type ListReelsOptions struct {
	Token string
	Page  int
	Limit int
}

// GetReelOptions identifies a single reel.
type GetReelOptions struct {
	Token string
	ID    string
}

// PatchReelOptions holds the fields to change. Nil fields are not sent.
type PatchReelOptions struct {
	Token       string
	ID          string
	Description *string
	Status      *string
	ContentType *string
	MediaType   *string
}

// DeleteReelOptions identifies the reel to delete.
type DeleteReelOptions struct {
	Token string
	ID    string
}

// ListNotesOptions selects the notes on one reel, newest first.
type ListNotesOptions struct {
	ContentID string
}

// CreateNoteOptions is a note to store.
type CreateNoteOptions struct {
	ContentID string
	Moderator content.Moderator
	Note      string
}

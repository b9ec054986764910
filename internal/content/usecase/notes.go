package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"social-admin-dashboard/internal/content"
	repo "social-admin-dashboard/internal/content/repository"
	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/internal/screen"
)

// Notes lists the moderator notes on a reel, newest first.
func (uc *implUseCase) Notes(ctx context.Context, sc model.Scope, contentID string) ([]content.Note, error) {
	if sc.SessionID == "" {
		return nil, screen.ErrAuthMissing
	}
	notes, err := uc.notes.ListNotes(ctx, repo.ListNotesOptions{ContentID: contentID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Notes ListNotes: %v", err)
		return nil, err
	}
	return notes, nil
}

// AddNote stores a note signed by the signed-in admin.
func (uc *implUseCase) AddNote(ctx context.Context, sc model.Scope, input content.AddNoteInput) (content.Note, error) {
	if sc.SessionID == "" {
		return content.Note{}, screen.ErrAuthMissing
	}
	text := strings.TrimSpace(input.Note)
	if text == "" {
		return content.Note{}, content.ErrEmptyNote
	}
	if utf8.RuneCountInString(text) > content.MaxNoteLength {
		return content.Note{}, content.ErrNoteTooLong
	}

	n, err := uc.notes.CreateNote(ctx, repo.CreateNoteOptions{
		ContentID: input.ContentID,
		Moderator: content.Moderator{ID: sc.UserID, Name: sc.DisplayName()},
		Note:      text,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddNote CreateNote: %v", err)
		return content.Note{}, err
	}
	return n, nil
}

package memory

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"social-admin-dashboard/internal/content"
	"social-admin-dashboard/internal/content/repository"
)

// ListNotes returns the reel's notes newest first.
func (r *implRepository) ListNotes(ctx context.Context, opt repository.ListNotesOptions) ([]content.Note, error) {
	r.mu.RLock()
	notes := slices.Clone(r.notes[opt.ContentID])
	r.mu.RUnlock()

	slices.Reverse(notes)
	if notes == nil {
		notes = []content.Note{}
	}
	return notes, nil
}

func (r *implRepository) CreateNote(ctx context.Context, opt repository.CreateNoteOptions) (content.Note, error) {
	n := content.Note{
		ID:        uuid.NewString(),
		ContentID: opt.ContentID,
		Moderator: opt.Moderator,
		Note:      opt.Note,
		CreatedAt: r.now().UTC(),
	}

	r.mu.Lock()
	r.notes[opt.ContentID] = append(r.notes[opt.ContentID], n)
	r.mu.Unlock()

	r.l.Debugf(ctx, "content.memory.CreateNote: %s on %s by %s", n.ID, n.ContentID, n.Moderator.ID)
	return n, nil
}

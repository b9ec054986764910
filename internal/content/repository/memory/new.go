package memory

import (
	"sync"
	"time"

	"social-admin-dashboard/internal/content"
	"social-admin-dashboard/internal/content/repository"
	"social-admin-dashboard/pkg/log"
)

type implRepository struct {
	l   log.Logger
	now func() time.Time

	mu    sync.RWMutex
	notes map[string][]content.Note
}

// New creates an in-memory moderator note store.
func New(l log.Logger) repository.NoteRepository {
	return newRepository(l, time.Now)
}

func newRepository(l log.Logger, now func() time.Time) *implRepository {
	return &implRepository{
		l:     l,
		now:   now,
		notes: make(map[string][]content.Note),
	}
}

package usecase

import (
	"time"

	"social-admin-dashboard/internal/content"
	"social-admin-dashboard/internal/content/repository"
	"social-admin-dashboard/internal/screen"
	"social-admin-dashboard/pkg/log"
)

const (
	screenLabel = "content"
	noticeLabel = "Content"
	authMessage = "Please log in to view content"
	updatePath  = "/content-management/update/"
)

// Options tunes the content screen.
type Options struct {
	PageSize     int
	RemoteLimit  int
	Debounce     time.Duration
	ConfirmTTL   time.Duration
	RegistrySize int
	RegistryTTL  time.Duration
}

// implUseCase is the private implementation of content.UseCase.
type implUseCase struct {
	repo    repository.Repository
	notes   repository.NoteRepository
	l       log.Logger
	opts    Options
	binding *screen.Binding[content.ContentItem]
}

// New creates a new content UseCase implementation. Reels and reports come
// from repo; moderator notes are kept in notes.
func New(repo repository.Repository, notes repository.NoteRepository, l log.Logger, opts Options) content.UseCase {
	uc := &implUseCase{
		repo:  repo,
		notes: notes,
		l:     l,
		opts:  opts,
	}
	reg := screen.NewRegistry[*screen.Screen[content.ContentItem]](opts.RegistrySize, opts.RegistryTTL)
	uc.binding = screen.NewBinding(content.ScreenName, reg, uc.newScreen)
	return uc
}

func (uc *implUseCase) newScreen() *screen.Screen[content.ContentItem] {
	return screen.New(screen.Options[content.ContentItem]{
		Name:        content.ScreenName,
		Config:      content.ListConfig(uc.opts.PageSize),
		Source:      screen.SourceFunc[content.ContentItem](uc.fetch),
		ID:          content.ItemID,
		Mutator:     screen.MutatorFunc(uc.mutate),
		Label:       screenLabel,
		NoticeLabel: noticeLabel,
		AuthMessage: authMessage,
		UpdatePath:  func(id string) string { return updatePath + id },
		RemoteLimit: uc.opts.RemoteLimit,
		Debounce:    uc.opts.Debounce,
		ConfirmTTL:  uc.opts.ConfirmTTL,
		Logger:      uc.l,
	})
}

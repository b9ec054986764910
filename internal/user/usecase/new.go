package usecase

import (
	"context"
	"time"

	contentRepo "social-admin-dashboard/internal/content/repository"
	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/internal/screen"
	tokenRepo "social-admin-dashboard/internal/token/repository"
	"social-admin-dashboard/internal/user"
	"social-admin-dashboard/internal/user/repository"
	"social-admin-dashboard/pkg/log"
)

// defaultReelLimit bounds the reel fetch behind a profile's content tab.
const defaultReelLimit = 100

// Options tunes the user screen and profile page.
type Options struct {
	PageSize     int
	ReelLimit    int
	Debounce     time.Duration
	RegistrySize int
	RegistryTTL  time.Duration
}

type implUseCase struct {
	repo    repository.Repository
	reels   contentRepo.ReelRepository
	ledger  tokenRepo.LedgerRepository
	l       log.Logger
	opts    Options
	binding *screen.Binding[user.User]
}

// New creates a new user UseCase implementation. reels and ledger back the
// profile page's content and balance tabs.
func New(repo repository.Repository, reels contentRepo.ReelRepository, ledger tokenRepo.LedgerRepository, l log.Logger, opts Options) user.UseCase {
	if opts.ReelLimit <= 0 {
		opts.ReelLimit = defaultReelLimit
	}
	uc := &implUseCase{
		repo:   repo,
		reels:  reels,
		ledger: ledger,
		l:      l,
		opts:   opts,
	}
	reg := screen.NewRegistry[*screen.Screen[user.User]](opts.RegistrySize, opts.RegistryTTL)
	uc.binding = screen.NewBinding(user.ScreenName, reg, uc.newScreen)
	return uc
}

// newScreen builds a read-only user screen; the list offers no row actions.
func (uc *implUseCase) newScreen() *screen.Screen[user.User] {
	return screen.New(screen.Options[user.User]{
		Name:        user.ScreenName,
		Config:      user.ListConfig(uc.opts.PageSize),
		Source:      screen.SourceFunc[user.User](uc.fetch),
		ID:          user.UserID,
		Label:       "users",
		NoticeLabel: "User",
		AuthMessage: "Please log in to view users",
		Debounce:    uc.opts.Debounce,
		Logger:      uc.l,
	})
}

// Bind returns the session's user screen, mounting it on first use.
func (uc *implUseCase) Bind(ctx context.Context, sc model.Scope) *screen.Screen[user.User] {
	return uc.binding.Bind(ctx, sc)
}

// CloseSession unmounts the session's user screen.
func (uc *implUseCase) CloseSession(sessionID string) int {
	return uc.binding.CloseSession(sessionID)
}

func (uc *implUseCase) fetch(ctx context.Context, q screen.Query) ([]user.User, error) {
	users, err := uc.repo.ListUsers(ctx, repository.ListUsersOptions{
		Token:  q.AccessToken,
		Search: q.Search,
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

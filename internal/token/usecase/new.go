package usecase

import (
	"context"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/internal/screen"
	"social-admin-dashboard/internal/token"
	"social-admin-dashboard/internal/token/repository"
	"social-admin-dashboard/pkg/log"
)

// Options tunes the ledger screen and the supply operations.
type Options struct {
	PageSize     int
	Debounce     time.Duration
	RegistrySize int
	RegistryTTL  time.Duration
	// SettleDelay is how long a mint or burn stays pending. Zero settles
	// it before the call returns.
	SettleDelay time.Duration
}

type implUseCase struct {
	repo    repository.Repository
	l       log.Logger
	opts    Options
	binding *screen.Binding[token.Transaction]
	printer *message.Printer
}

// New creates a new token UseCase implementation.
func New(repo repository.Repository, l log.Logger, opts Options) token.UseCase {
	uc := &implUseCase{
		repo:    repo,
		l:       l,
		opts:    opts,
		printer: message.NewPrinter(language.English),
	}
	reg := screen.NewRegistry[*screen.Screen[token.Transaction]](opts.RegistrySize, opts.RegistryTTL)
	uc.binding = screen.NewBinding(token.ScreenName, reg, uc.newScreen)
	return uc
}

// newScreen builds the read-only transaction ledger screen.
func (uc *implUseCase) newScreen() *screen.Screen[token.Transaction] {
	return screen.New(screen.Options[token.Transaction]{
		Name:        token.ScreenName,
		Config:      token.ListConfig(uc.opts.PageSize),
		Source:      screen.SourceFunc[token.Transaction](uc.fetch),
		ID:          token.TransactionID,
		Label:       "transactions",
		NoticeLabel: "Transaction",
		AuthMessage: "Please log in to view transactions",
		Debounce:    uc.opts.Debounce,
		Logger:      uc.l,
	})
}

// Bind returns the session's ledger screen, mounting it on first use.
func (uc *implUseCase) Bind(ctx context.Context, sc model.Scope) *screen.Screen[token.Transaction] {
	return uc.binding.Bind(ctx, sc)
}

// CloseSession unmounts the session's ledger screen.
func (uc *implUseCase) CloseSession(sessionID string) int {
	return uc.binding.CloseSession(sessionID)
}

func (uc *implUseCase) fetch(ctx context.Context, q screen.Query) ([]token.Transaction, error) {
	return uc.repo.ListTransactions(ctx, repository.ListTransactionsOptions{
		Page:  q.Page,
		Limit: q.Limit,
	})
}

// refresh reloads the session's ledger if it is mounted.
func (uc *implUseCase) refresh(ctx context.Context, sessionID string) {
	if s, ok := uc.binding.Lookup(sessionID); ok {
		s.Reload(ctx)
	}
}

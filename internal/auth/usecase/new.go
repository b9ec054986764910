package usecase

import (
	"time"

	"social-admin-dashboard/internal/auth"
	"social-admin-dashboard/internal/auth/repository"
	"social-admin-dashboard/pkg/googleauth"
	"social-admin-dashboard/pkg/log"
	"social-admin-dashboard/pkg/scope"
)

// Options are the tunables of the auth use case.
type Options struct {
	SessionTTL          time.Duration
	LoginAttemptsPerMin int
}

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	accounts repository.AccountRepository
	sessions repository.SessionRepository
	tokens   scope.Manager
	google   *googleauth.Client
	closers  []auth.SessionCloser
	limiter  *loginLimiter
	ttl      time.Duration
	now      func() time.Time
	l        log.Logger
}

// New creates a new auth UseCase implementation.
func New(
	l log.Logger,
	accounts repository.AccountRepository,
	sessions repository.SessionRepository,
	tokens scope.Manager,
	google *googleauth.Client,
	opts Options,
	closers ...auth.SessionCloser,
) auth.UseCase {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 24 * time.Hour
	}
	return &implUseCase{
		accounts: accounts,
		sessions: sessions,
		tokens:   tokens,
		google:   google,
		closers:  closers,
		limiter:  newLoginLimiter(opts.LoginAttemptsPerMin),
		ttl:      opts.SessionTTL,
		now:      time.Now,
		l:        l,
	}
}

package repository

import (
	"context"

	"social-admin-dashboard/internal/model"
)

// Repository is the composed interface for the auth domain.
type Repository interface {
	AccountRepository
	SessionRepository
}

// AccountRepository talks to the backend's /auth endpoints.
type AccountRepository interface {
	Login(ctx context.Context, opt LoginOptions) (string, error)
	Profile(ctx context.Context, accessToken string) (model.Profile, error)
	Register(ctx context.Context, opt RegisterOptions) error
	VerifyEmail(ctx context.Context, opt VerifyEmailOptions) error
	ResendOTP(ctx context.Context, email string) error
}

// SessionRepository keeps dashboard sessions.
type SessionRepository interface {
	SaveSession(ctx context.Context, s model.Session) error
	GetSession(ctx context.Context, id string) (model.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

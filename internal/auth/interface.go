package auth

import (
	"context"

	"social-admin-dashboard/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Credentials
	SignIn(ctx context.Context, input SignInInput) (SignInOutput, error)
	SignUp(ctx context.Context, input SignUpInput) (SignUpOutput, error)
	VerifyEmail(ctx context.Context, input VerifyEmailInput) error
	ResendOTP(ctx context.Context, input ResendOTPInput) error

	// Google
	GoogleAuthURL(ctx context.Context, state string) (string, error)
	GoogleCallback(ctx context.Context, input GoogleCallbackInput) (SignInOutput, error)

	// Sessions
	Authenticate(ctx context.Context, token string) (model.Session, error)
	SignOut(ctx context.Context, sessionID string) error
}

// SessionCloser is notified when a session ends so it can unmount screens.
type SessionCloser interface {
	CloseSession(sessionID string) int
}

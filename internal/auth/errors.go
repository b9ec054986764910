package auth

import "errors"

var (
	ErrMissingCredentials = errors.New("Email and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTooManyAttempts    = errors.New("too many sign-in attempts, try again later")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrInvalidState       = errors.New("invalid oauth state")
	ErrGoogleDisabled     = errors.New("google sign-in is not configured")
	ErrInvalidPayload     = errors.New("invalid payload")
)

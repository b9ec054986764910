package usecase

import (
	"context"
	"crypto/subtle"
	"errors"

	"social-admin-dashboard/internal/auth"
	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/pkg/googleauth"
)

// GoogleAuthURL returns the Google consent page for state.
func (uc *implUseCase) GoogleAuthURL(ctx context.Context, state string) (string, error) {
	u, err := uc.google.AuthCodeURL(state)
	if errors.Is(err, googleauth.ErrNotConfigured) {
		return "", auth.ErrGoogleDisabled
	}
	return u, err
}

// GoogleCallback finishes the Google flow and opens a session. Google
// sessions carry no backend token, so data screens report the missing token.
func (uc *implUseCase) GoogleCallback(ctx context.Context, input auth.GoogleCallbackInput) (auth.SignInOutput, error) {
	if !uc.google.Enabled() {
		return auth.SignInOutput{}, auth.ErrGoogleDisabled
	}
	if input.State == "" || subtle.ConstantTimeCompare([]byte(input.State), []byte(input.ExpectedState)) != 1 {
		return auth.SignInOutput{}, auth.ErrInvalidState
	}

	info, err := uc.google.Exchange(ctx, input.Code)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GoogleCallback Exchange: %v", err)
		return auth.SignInOutput{}, err
	}

	return uc.openSession(ctx, model.ProviderGoogle, model.Profile{
		ID:      info.ID,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, "")
}

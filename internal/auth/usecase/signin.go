package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"social-admin-dashboard/internal/auth"
	"social-admin-dashboard/internal/auth/repository"
	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/pkg/backend"
	"social-admin-dashboard/pkg/scope"
)

// SignIn logs in against the backend, loads the profile and opens a session.
func (uc *implUseCase) SignIn(ctx context.Context, input auth.SignInInput) (auth.SignInOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return auth.SignInOutput{}, auth.ErrMissingCredentials
	}
	if !uc.limiter.allow(email) {
		uc.l.Warnf(ctx, "uc.SignIn rate limited: %s", email)
		return auth.SignInOutput{}, auth.ErrTooManyAttempts
	}

	token, err := uc.accounts.Login(ctx, repository.LoginOptions{Email: email, Password: input.Password})
	if err != nil {
		if he, ok := backend.AsHTTPError(err); ok && (he.StatusCode == http.StatusUnauthorized || he.StatusCode == http.StatusBadRequest || he.StatusCode == http.StatusNotFound) {
			return auth.SignInOutput{}, auth.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "uc.SignIn Login: %v", err)
		return auth.SignInOutput{}, err
	}

	profile, err := uc.accounts.Profile(ctx, token)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignIn Profile: %v", err)
		return auth.SignInOutput{}, err
	}

	return uc.openSession(ctx, model.ProviderCredentials, profile, token)
}

func (uc *implUseCase) openSession(ctx context.Context, provider model.Provider, profile model.Profile, accessToken string) (auth.SignInOutput, error) {
	now := uc.now()
	s := model.Session{
		ID:          uuid.NewString(),
		Provider:    provider,
		Profile:     profile,
		AccessToken: accessToken,
		CreatedAt:   now,
		ExpiresAt:   now.Add(uc.ttl),
	}
	if err := uc.sessions.SaveSession(ctx, s); err != nil {
		uc.l.Errorf(ctx, "uc.openSession SaveSession: %v", err)
		return auth.SignInOutput{}, err
	}

	token, err := uc.tokens.CreateToken(scope.Payload{
		SessionID: s.ID,
		UserID:    profile.ID,
		Email:     profile.Email,
		Role:      profile.Role,
		ExpiresAt: s.ExpiresAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.openSession CreateToken: %v", err)
		return auth.SignInOutput{}, err
	}

	uc.l.Infof(ctx, "uc.openSession %s session for %s", provider, profile.Email)
	return auth.SignInOutput{Session: s, Token: token}, nil
}

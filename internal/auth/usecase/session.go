package usecase

import (
	"context"
	"errors"

	"social-admin-dashboard/internal/auth"
	"social-admin-dashboard/internal/auth/repository"
	"social-admin-dashboard/internal/model"
)

// Authenticate resolves a dashboard token to its live session.
func (uc *implUseCase) Authenticate(ctx context.Context, token string) (model.Session, error) {
	p, err := uc.tokens.Verify(token)
	if err != nil {
		return model.Session{}, auth.ErrSessionNotFound
	}
	s, err := uc.sessions.GetSession(ctx, p.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return model.Session{}, auth.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "uc.Authenticate GetSession: %v", err)
		return model.Session{}, err
	}
	return s, nil
}

// SignOut ends a session and unmounts its screens.
func (uc *implUseCase) SignOut(ctx context.Context, sessionID string) error {
	if err := uc.sessions.DeleteSession(ctx, sessionID); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		uc.l.Errorf(ctx, "uc.SignOut DeleteSession: %v", err)
		return err
	}
	uc.CloseSession(sessionID)
	return nil
}

// CloseSession unmounts every screen of sessionID.
func (uc *implUseCase) CloseSession(sessionID string) {
	n := 0
	for _, c := range uc.closers {
		n += c.CloseSession(sessionID)
	}
	if n > 0 {
		uc.l.Debugf(context.Background(), "uc.CloseSession %s: %d screens closed", sessionID, n)
	}
}

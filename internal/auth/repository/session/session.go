package session

import (
	"context"

	"social-admin-dashboard/internal/auth/repository"
	"social-admin-dashboard/internal/model"
)

func (r *implRepository) SaveSession(ctx context.Context, s model.Session) error {
	r.sessions.Add(s.ID, s)
	return nil
}

func (r *implRepository) GetSession(ctx context.Context, id string) (model.Session, error) {
	s, ok := r.sessions.Get(id)
	if !ok {
		return model.Session{}, repository.ErrSessionNotFound
	}
	if !s.ExpiresAt.IsZero() && r.now().After(s.ExpiresAt) {
		r.sessions.Remove(id)
		return model.Session{}, repository.ErrSessionNotFound
	}
	return s, nil
}

func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	if !r.sessions.Remove(id) {
		return repository.ErrSessionNotFound
	}
	return nil
}

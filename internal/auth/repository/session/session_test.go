package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"social-admin-dashboard/internal/auth/repository"
	"social-admin-dashboard/internal/auth/repository/session"
	"social-admin-dashboard/internal/model"
)

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	var evicted []string
	repo := session.New(2, time.Hour, func(id string) { evicted = append(evicted, id) })

	s := model.Session{ID: "s1", AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)}
	if err := repo.SaveSession(ctx, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Get", func(t *testing.T) {
		got, err := repo.GetSession(ctx, "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.AccessToken != "tok" {
			t.Errorf("unexpected session: %+v", got)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		if _, err := repo.GetSession(ctx, "nope"); !errors.Is(err, repository.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("Expired session is dropped", func(t *testing.T) {
		repo.SaveSession(ctx, model.Session{ID: "old", ExpiresAt: time.Now().Add(-time.Minute)})
		if _, err := repo.GetSession(ctx, "old"); !errors.Is(err, repository.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("Delete notifies", func(t *testing.T) {
		evicted = nil
		if err := repo.DeleteSession(ctx, "s1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(evicted) != 1 || evicted[0] != "s1" {
			t.Errorf("unexpected evictions: %v", evicted)
		}
		if err := repo.DeleteSession(ctx, "s1"); !errors.Is(err, repository.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"social-admin-dashboard/internal/auth"
	"social-admin-dashboard/internal/auth/repository/session"
	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/pkg/backend"
	"social-admin-dashboard/pkg/googleauth"
	"social-admin-dashboard/pkg/scope"
)

func newTestUseCase(accounts *mockAccounts, closer *mockCloser, perMin int) auth.UseCase {
	return New(
		&mockLogger{},
		accounts,
		session.New(100, time.Hour, nil),
		scope.New("0123456789abcdef0123456789abcdef", "dashboard", time.Hour),
		googleauth.New(googleauth.Config{}),
		Options{SessionTTL: time.Hour, LoginAttemptsPerMin: perMin},
		closer,
	)
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("Success opens a session", func(t *testing.T) {
		accounts := &mockAccounts{token: "backend-token", profile: model.Profile{ID: "u1", Email: "a@b.c", Role: "Admin"}}
		uc := newTestUseCase(accounts, &mockCloser{}, 0)

		out, err := uc.SignIn(ctx, auth.SignInInput{Email: "a@b.c", Password: "pw"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Token == "" || out.Session.AccessToken != "backend-token" {
			t.Fatalf("unexpected output: %+v", out)
		}

		s, err := uc.Authenticate(ctx, out.Token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID != out.Session.ID || s.Provider != model.ProviderCredentials {
			t.Errorf("unexpected session: %+v", s)
		}
	})

	t.Run("Missing credentials", func(t *testing.T) {
		accounts := &mockAccounts{}
		uc := newTestUseCase(accounts, &mockCloser{}, 0)
		if _, err := uc.SignIn(ctx, auth.SignInInput{Email: " "}); !errors.Is(err, auth.ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
		if accounts.logins != 0 {
			t.Errorf("backend must not be called")
		}
	})

	t.Run("Backend rejects", func(t *testing.T) {
		accounts := &mockAccounts{loginErr: &backend.HTTPError{StatusCode: http.StatusUnauthorized}}
		uc := newTestUseCase(accounts, &mockCloser{}, 0)
		if _, err := uc.SignIn(ctx, auth.SignInInput{Email: "a@b.c", Password: "bad"}); !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("Rate limited", func(t *testing.T) {
		accounts := &mockAccounts{loginErr: &backend.HTTPError{StatusCode: http.StatusUnauthorized}}
		uc := newTestUseCase(accounts, &mockCloser{}, 2)

		var last error
		for i := 0; i < 5; i++ {
			_, last = uc.SignIn(ctx, auth.SignInInput{Email: "a@b.c", Password: "bad"})
		}
		if !errors.Is(last, auth.ErrTooManyAttempts) {
			t.Errorf("expected ErrTooManyAttempts, got %v", last)
		}
		if accounts.logins >= 5 {
			t.Errorf("limited attempts must not reach the backend, got %d", accounts.logins)
		}
	})
}

func TestSignOut(t *testing.T) {
	ctx := context.Background()
	accounts := &mockAccounts{token: "backend-token", profile: model.Profile{ID: "u1"}}
	closer := &mockCloser{}
	uc := newTestUseCase(accounts, closer, 0)

	out, err := uc.SignIn(ctx, auth.SignInInput{Email: "a@b.c", Password: "pw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.SignOut(ctx, out.Session.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(closer.closed) != 1 || closer.closed[0] != out.Session.ID {
		t.Errorf("screens not closed: %v", closer.closed)
	}
	if _, err := uc.Authenticate(ctx, out.Token); !errors.Is(err, auth.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after sign-out, got %v", err)
	}
}

func TestSignUp(t *testing.T) {
	accounts := &mockAccounts{}
	uc := newTestUseCase(accounts, &mockCloser{}, 0)

	out, err := uc.SignUp(context.Background(), auth.SignUpInput{FirstName: " Ada ", Email: "ada@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Email != "ada@example.com" {
		t.Errorf("unexpected output: %+v", out)
	}
	if len(accounts.registered) != 1 || accounts.registered[0].Role != "user" || accounts.registered[0].FirstName != "Ada" {
		t.Errorf("unexpected register call: %+v", accounts.registered)
	}

	if err := uc.VerifyEmail(context.Background(), auth.VerifyEmailInput{Email: "ada@example.com"}); !errors.Is(err, auth.ErrInvalidPayload) {
		t.Errorf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestGoogleDisabled(t *testing.T) {
	uc := newTestUseCase(&mockAccounts{}, &mockCloser{}, 0)
	if _, err := uc.GoogleAuthURL(context.Background(), "state"); !errors.Is(err, auth.ErrGoogleDisabled) {
		t.Errorf("expected ErrGoogleDisabled, got %v", err)
	}
	if _, err := uc.GoogleCallback(context.Background(), auth.GoogleCallbackInput{State: "a", ExpectedState: "a", Code: "c"}); !errors.Is(err, auth.ErrGoogleDisabled) {
		t.Errorf("expected ErrGoogleDisabled, got %v", err)
	}
}

func TestGoogleCallbackState(t *testing.T) {
	uc := New(
		&mockLogger{},
		&mockAccounts{},
		session.New(10, time.Hour, nil),
		scope.New("0123456789abcdef0123456789abcdef", "dashboard", time.Hour),
		googleauth.New(googleauth.Config{ClientID: "id"}),
		Options{},
	)
	_, err := uc.GoogleCallback(context.Background(), auth.GoogleCallbackInput{State: "a", ExpectedState: "b", Code: "c"})
	if !errors.Is(err, auth.ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
}

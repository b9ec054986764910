package authapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"social-admin-dashboard/internal/auth/repository"
	"social-admin-dashboard/internal/auth/repository/authapi"
	"social-admin-dashboard/pkg/backend"
	"social-admin-dashboard/pkg/log"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		switch {
		case body["email"] == "admin@example.com" && body["password"] == "secret":
			json.NewEncoder(w).Encode(map[string]string{"accessToken": "backend-token"})
		case body["email"] == "empty@example.com":
			json.NewEncoder(w).Encode(map[string]string{})
		default:
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{"message": "Invalid credentials", "statusCode": 401})
		}
	})

	mux.HandleFunc("/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer backend-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"_id":       "u-1",
			"email":     "admin@example.com",
			"firstName": "Ada",
			"lastName":  "Admin",
			"role":      "Admin",
		})
	})

	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["role"] != "user" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(body)
	})

	mux.HandleFunc("/auth/verifyEmail", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["verificationCode"] != "123456" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid code"})
			return
		}
		w.Write([]byte(`{"verified":true}`))
	})

	mux.HandleFunc("/auth/resend-otp", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestAccountRepository(t *testing.T) {
	ts := newServer(t)
	repo := authapi.New(backend.NewClient(ts.URL), log.NewNop())
	ctx := context.Background()

	t.Run("Login", func(t *testing.T) {
		token, err := repo.Login(ctx, repository.LoginOptions{Email: "admin@example.com", Password: "secret"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "backend-token" {
			t.Errorf("unexpected token: %s", token)
		}
	})

	t.Run("Login rejected", func(t *testing.T) {
		_, err := repo.Login(ctx, repository.LoginOptions{Email: "x@example.com", Password: "bad"})
		he, ok := backend.AsHTTPError(err)
		if !ok || he.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401 HTTPError, got %v", err)
		}
	})

	t.Run("Login without token", func(t *testing.T) {
		_, err := repo.Login(ctx, repository.LoginOptions{Email: "empty@example.com", Password: "x"})
		if !errors.Is(err, repository.ErrNoAccessToken) {
			t.Errorf("expected ErrNoAccessToken, got %v", err)
		}
	})

	t.Run("Profile", func(t *testing.T) {
		p, err := repo.Profile(ctx, "backend-token")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "u-1" || p.Name != "Ada Admin" || p.Role != "Admin" {
			t.Errorf("unexpected profile: %+v", p)
		}
	})

	t.Run("Register", func(t *testing.T) {
		err := repo.Register(ctx, repository.RegisterOptions{Email: "n@example.com", Password: "p", Role: "user"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("VerifyEmail", func(t *testing.T) {
		if err := repo.VerifyEmail(ctx, repository.VerifyEmailOptions{Email: "n@example.com", VerificationCode: "123456"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.VerifyEmail(ctx, repository.VerifyEmailOptions{Email: "n@example.com", VerificationCode: "000000"}); err == nil {
			t.Errorf("expected invalid code error")
		}
	})

	t.Run("ResendOTP", func(t *testing.T) {
		if err := repo.ResendOTP(ctx, "n@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

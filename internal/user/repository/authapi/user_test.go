package authapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"social-admin-dashboard/internal/user/repository"
	"social-admin-dashboard/internal/user/repository/authapi"
	"social-admin-dashboard/pkg/backend"
	"social-admin-dashboard/pkg/log"
)

func TestListUsers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/users", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"message": "Unauthorized"})
			return
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{"_id": "u1", "firstName": "Daniel", "lastName": "Smith", "role": "User"},
			{"_id": "u2", "firstName": "Jane", "lastName": "Doe", "role": "Suspended"},
		})
	})
	mux.HandleFunc("GET /auth/search-users", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"_id": "u1", "firstName": r.URL.Query().Get("q")}},
		})
	})
	mux.HandleFunc("GET /broken/auth/users", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"users": []}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	repo := authapi.New(backend.NewClient(srv.URL), log.NewNop())
	ctx := context.Background()

	tests := []struct {
		name    string
		repo    repository.Repository
		opt     repository.ListUsersOptions
		wantLen int
		wantErr func(error) bool
	}{
		{name: "full list", repo: repo, opt: repository.ListUsersOptions{Token: "tok"}, wantLen: 2},
		{name: "search endpoint", repo: repo, opt: repository.ListUsersOptions{Token: "tok", Search: " dan "}, wantLen: 1},
		{
			name: "unauthorized",
			repo: repo,
			opt:  repository.ListUsersOptions{Token: "bad"},
			wantErr: func(err error) bool {
				he, ok := backend.AsHTTPError(err)
				return ok && he.StatusCode == http.StatusUnauthorized
			},
		},
		{
			name: "malformed body",
			repo: authapi.New(backend.NewClient(srv.URL+"/broken"), log.NewNop()),
			opt:  repository.ListUsersOptions{Token: "tok"},
			wantErr: func(err error) bool {
				return errors.Is(err, backend.ErrMalformedResponse) && errors.Is(err, repository.ErrFailedToList)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := tt.repo.ListUsers(ctx, tt.opt)
			if tt.wantErr != nil {
				if !tt.wantErr(err) {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(users) != tt.wantLen {
				t.Fatalf("got %d users, want %d", len(users), tt.wantLen)
			}
		})
	}
}

func TestGetUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/users/u1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"_id": "u1", "firstName": "Alex", "lastName": "Johnson"})
	})
	mux.HandleFunc("GET /auth/users/u2", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"_id": "u2", "firstName": "Jane"}})
	})
	mux.HandleFunc("GET /auth/users/gone", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("GET /auth/users/empty", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	repo := authapi.New(backend.NewClient(srv.URL), log.NewNop())
	ctx := context.Background()

	tests := []struct {
		name     string
		id       string
		wantName string
		wantErr  error
	}{
		{name: "bare object", id: "u1", wantName: "Alex Johnson"},
		{name: "data envelope", id: "u2", wantName: "Jane"},
		{name: "not found", id: "gone", wantErr: repository.ErrNotFound},
		{name: "empty body", id: "empty", wantErr: repository.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := repo.GetUser(ctx, repository.GetUserOptions{Token: "tok", ID: tt.id})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GetUser() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetUser() error = %v", err)
			}
			if u.FullName() != tt.wantName {
				t.Fatalf("GetUser() name = %q, want %q", u.FullName(), tt.wantName)
			}
		})
	}
}

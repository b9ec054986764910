package authapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"social-admin-dashboard/internal/user"
	"social-admin-dashboard/internal/user/repository"
	"social-admin-dashboard/pkg/backend"
)

// ListUsers returns every account, or the backend's matches for Search.
func (r *implRepository) ListUsers(ctx context.Context, opt repository.ListUsersOptions) ([]user.User, error) {
	req := backend.Request{
		Method: http.MethodGet,
		Path:   "/auth/users",
		Token:  opt.Token,
	}
	if q := strings.TrimSpace(opt.Search); q != "" {
		req.Path = "/auth/search-users"
		req.Query = url.Values{"q": []string{q}}
	}

	list, err := backend.GetList[user.User](ctx, r.client, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	return list.Items, nil
}

// GetUser returns one account. The backend may wrap it in {"data": ...}.
func (r *implRepository) GetUser(ctx context.Context, opt repository.GetUserOptions) (user.User, error) {
	var raw struct {
		user.User
		Data *user.User `json:"data"`
	}
	err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/auth/users/" + url.PathEscape(opt.ID),
		Token:  opt.Token,
	}, &raw)
	if err != nil {
		if he, ok := backend.AsHTTPError(err); ok && he.StatusCode == http.StatusNotFound {
			return user.User{}, repository.ErrNotFound
		}
		return user.User{}, fmt.Errorf("%w: %w", repository.ErrFailedToGet, err)
	}

	u := raw.User
	if raw.Data != nil {
		u = *raw.Data
	}
	if u.ID == "" {
		return user.User{}, repository.ErrNotFound
	}
	return u, nil
}

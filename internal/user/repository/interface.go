package repository

import (
	"context"

	"social-admin-dashboard/internal/user"
)

// Repository reads platform accounts.
type Repository interface {
	ListUsers(ctx context.Context, opt ListUsersOptions) ([]user.User, error)
	GetUser(ctx context.Context, opt GetUserOptions) (user.User, error)
}

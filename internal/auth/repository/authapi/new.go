package authapi

import (
	"social-admin-dashboard/internal/auth/repository"
	"social-admin-dashboard/pkg/backend"
	"social-admin-dashboard/pkg/log"
)

type implRepository struct {
	client *backend.Client
	l      log.Logger
}

// New returns the backend-backed account repository.
func New(client *backend.Client, l log.Logger) repository.AccountRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

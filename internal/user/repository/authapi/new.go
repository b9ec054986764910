package authapi

import (
	"social-admin-dashboard/internal/user/repository"
	"social-admin-dashboard/pkg/backend"
	"social-admin-dashboard/pkg/log"
)

type implRepository struct {
	client *backend.Client
	l      log.Logger
}

// New creates a user repository backed by the platform auth API.
func New(client *backend.Client, l log.Logger) repository.Repository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

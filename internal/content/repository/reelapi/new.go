package reelapi

import (
	"fmt"

	"social-admin-dashboard/internal/content/repository"
	"social-admin-dashboard/pkg/backend"
	"social-admin-dashboard/pkg/log"
)

type implRepository struct {
	client *backend.Client
	l      log.Logger
}

// New creates a reel repository backed by the platform REST API.
func New(client *backend.Client, l log.Logger) repository.Repository {
	if client == nil {
		panic("content/repository/reelapi: client is required")
	}
	return &implRepository{client: client, l: l}
}

func reelPath(id string) string {
	return fmt.Sprintf("/reel/%s", id)
}

package session

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"social-admin-dashboard/internal/auth/repository"
	"social-admin-dashboard/internal/model"
)

const defaultSize = 10000

type implRepository struct {
	sessions *expirable.LRU[string, model.Session]
	now      func() time.Time
}

// New returns an in-memory session store. Sessions expire after ttl or
// when more than size are held. onEvict, when set, sees every session that
// leaves the store.
func New(size int, ttl time.Duration, onEvict func(id string)) repository.SessionRepository {
	if size <= 0 {
		size = defaultSize
	}
	var cb expirable.EvictCallback[string, model.Session]
	if onEvict != nil {
		cb = func(id string, _ model.Session) { onEvict(id) }
	}
	return &implRepository{
		sessions: expirable.NewLRU[string, model.Session](size, cb, ttl),
		now:      time.Now,
	}
}

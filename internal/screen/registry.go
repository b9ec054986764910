package screen

import (
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultRegistrySize = 1024
	defaultRegistryTTL  = 30 * time.Minute
	keySep              = "|"
)

// Closer is anything the registry can unmount.
type Closer interface {
	Close()
}

// Registry keeps one screen per (session, screen name). Screens that fall
// out of the cache, expire, or belong to a closed session are unmounted.
type Registry[S Closer] struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, S]
}

// NewRegistry returns a registry holding at most size screens for ttl each.
func NewRegistry[S Closer](size int, ttl time.Duration) *Registry[S] {
	if size <= 0 {
		size = defaultRegistrySize
	}
	if ttl <= 0 {
		ttl = defaultRegistryTTL
	}
	return &Registry[S]{
		cache: expirable.NewLRU[string, S](size, func(_ string, s S) {
			s.Close()
		}, ttl),
	}
}

// GetOrCreate returns the session's screen called name, building it with
// create on first use. created reports whether create ran.
func (r *Registry[S]) GetOrCreate(sessionID, name string, create func() S) (s S, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := registryKey(sessionID, name)
	if s, ok := r.cache.Get(key); ok {
		return s, false
	}
	s = create()
	r.cache.Add(key, s)
	return s, true
}

// Get returns the session's screen called name, if mounted.
func (r *Registry[S]) Get(sessionID, name string) (S, bool) {
	return r.cache.Get(registryKey(sessionID, name))
}

// Remove unmounts one screen.
func (r *Registry[S]) Remove(sessionID, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.Remove(registryKey(sessionID, name))
}

// CloseSession unmounts every screen of a session.
func (r *Registry[S]) CloseSession(sessionID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := sessionID + keySep
	n := 0
	for _, key := range r.cache.Keys() {
		if strings.HasPrefix(key, prefix) && r.cache.Remove(key) {
			n++
		}
	}
	return n
}

// Len returns the number of mounted screens.
func (r *Registry[S]) Len() int {
	return r.cache.Len()
}

// Purge unmounts everything.
func (r *Registry[S]) Purge() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Purge()
}

func registryKey(sessionID, name string) string {
	return sessionID + keySep + name
}

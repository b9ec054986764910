package usecase

import (
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// loginLimiter throttles sign-in attempts per email.
type loginLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newLoginLimiter(perMin int) *loginLimiter {
	if perMin <= 0 {
		return nil
	}
	burst := perMin / 2
	if burst < 1 {
		burst = 1
	}
	return &loginLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](5000, nil, 15*time.Minute),
		rate:     rate.Limit(float64(perMin) / 60.0),
		burst:    burst,
	}
}

// allow reports whether another attempt for email may proceed. A nil
// limiter allows everything.
func (rl *loginLimiter) allow(email string) bool {
	if rl == nil {
		return true
	}
	key := strings.ToLower(strings.TrimSpace(email))
	return rl.limiterFor(key).Allow()
}

// limiterFor returns the limiter for key, creating it at most once.
func (rl *loginLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter
}

package api

import (
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

const (
	loginBurst       = 5
	loginRefillEvery = 12 // seconds per replenished attempt
)

// loginLimiter throttles credential checks per username so a single account
// cannot be brute-forced through the login routes.
type loginLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newLoginLimiter() *loginLimiter {
	return &loginLimiter{
		limiters: make(map[string]*rate.Limiter),
	}
}

func (limiter *loginLimiter) allow(username string) bool {
	key := strings.ToLower(strings.TrimSpace(username))
	if key == "" {
		key = "unknown"
	}

	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	entry, exists := limiter.limiters[key]
	if !exists {
		entry = rate.NewLimiter(rate.Limit(1.0/loginRefillEvery), loginBurst)
		limiter.limiters[key] = entry
	}
	return entry.Allow()
}

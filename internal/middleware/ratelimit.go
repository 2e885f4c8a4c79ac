package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// RateLimiter is a fixed-window request counter keyed by caller address and
// route. Windows are evicted on a periodic sweep so the map stays bounded.
type RateLimiter struct {
	clock    clockwork.Clock
	limit    int
	window   time.Duration
	mu       sync.Mutex
	counters map[string]*windowCounter
}

type windowCounter struct {
	windowStart time.Time
	count       int
}

// NewRateLimiter allows limit requests per key per window.
func NewRateLimiter(clock clockwork.Clock, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		clock:    clock,
		limit:    limit,
		window:   window,
		counters: make(map[string]*windowCounter),
	}
}

// Allow records a hit for key and reports whether it is within the limit.
func (rl *RateLimiter) Allow(key string) bool {
	now := rl.clock.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.counters[key]
	if !ok || now.Sub(c.windowStart) >= rl.window {
		rl.counters[key] = &windowCounter{windowStart: now, count: 1}
		return true
	}

	c.count++
	return c.count <= rl.limit
}

// Sweep evicts expired windows. Call periodically from a background goroutine.
func (rl *RateLimiter) Sweep() {
	now := rl.clock.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, c := range rl.counters {
		if now.Sub(c.windowStart) >= rl.window {
			delete(rl.counters, key)
		}
	}
}

// Handler applies the limiter keyed by remote address + route.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}

		if !rl.Allow(host + " " + r.Method + " " + r.URL.Path) {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

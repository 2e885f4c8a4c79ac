package middleware

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestRateLimiterAllowsWithinLimit(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rl := NewRateLimiter(clock, 3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("key") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("key") {
		t.Error("fourth request should be rejected")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rl := NewRateLimiter(clock, 1, time.Minute)

	if !rl.Allow("a") {
		t.Fatal("first request for a should be allowed")
	}
	if !rl.Allow("b") {
		t.Error("first request for b should be allowed despite a being at its limit")
	}
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rl := NewRateLimiter(clock, 1, time.Minute)

	if !rl.Allow("key") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow("key") {
		t.Fatal("second request in window should be rejected")
	}

	clock.Advance(time.Minute)

	if !rl.Allow("key") {
		t.Error("request after window should be allowed")
	}
}

func TestRateLimiterSweepEvictsExpired(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rl := NewRateLimiter(clock, 1, time.Minute)

	rl.Allow("stale")
	clock.Advance(2 * time.Minute)
	rl.Allow("fresh")

	rl.Sweep()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, ok := rl.counters["stale"]; ok {
		t.Error("expired window should be evicted")
	}
	if _, ok := rl.counters["fresh"]; !ok {
		t.Error("live window should survive the sweep")
	}
}

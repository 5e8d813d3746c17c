package rate_limiter

import (
	"sync"
	"time"
)

// RateLimiter ogranicza liczbę prób logowania z jednego adresu IP w oknie
// czasowym. Okno jest przesuwne: liczą się tylko próby nowsze niż window.
type RateLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	limit    int
	window   time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		attempts: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}

	// Okresowe czyszczenie adresów, które przestały próbować
	go rl.cleanupLoop()

	return rl
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		cutoff := time.Now().Add(-rl.window)
		for ip, times := range rl.attempts {
			fresh := pruneOlderThan(times, cutoff)
			if len(fresh) == 0 {
				delete(rl.attempts, ip)
			} else {
				rl.attempts[ip] = fresh
			}
		}
		rl.mu.Unlock()
	}
}

// IsAllowed rejestruje próbę i mówi, czy mieści się w limicie
func (rl *RateLimiter) IsAllowed(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	fresh := pruneOlderThan(rl.attempts[ip], now.Add(-rl.window))

	if len(fresh) >= rl.limit {
		rl.attempts[ip] = fresh
		return false
	}

	rl.attempts[ip] = append(fresh, now)
	return true
}

// GetRemainingRequests zwraca liczbę prób pozostałych dla danego IP
func (rl *RateLimiter) GetRemainingRequests(ip string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	fresh := pruneOlderThan(rl.attempts[ip], time.Now().Add(-rl.window))
	remaining := rl.limit - len(fresh)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func pruneOlderThan(times []time.Time, cutoff time.Time) []time.Time {
	var fresh []time.Time
	for _, t := range times {
		if t.After(cutoff) {
			fresh = append(fresh, t)
		}
	}
	return fresh
}

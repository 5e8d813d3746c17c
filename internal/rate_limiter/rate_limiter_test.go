package rate_limiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedEnforcesLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	assert.True(t, rl.IsAllowed("10.0.0.1"))
	assert.True(t, rl.IsAllowed("10.0.0.1"))
	assert.True(t, rl.IsAllowed("10.0.0.1"))
	assert.False(t, rl.IsAllowed("10.0.0.1"))

	// inny adres ma własny licznik
	assert.True(t, rl.IsAllowed("10.0.0.2"))
}

func TestGetRemainingRequests(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)

	assert.Equal(t, 5, rl.GetRemainingRequests("10.0.0.1"))
	rl.IsAllowed("10.0.0.1")
	rl.IsAllowed("10.0.0.1")
	assert.Equal(t, 3, rl.GetRemainingRequests("10.0.0.1"))
}

func TestWindowExpiry(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	assert.True(t, rl.IsAllowed("10.0.0.1"))
	assert.False(t, rl.IsAllowed("10.0.0.1"))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, rl.IsAllowed("10.0.0.1"))
}

package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketExhaustion(t *testing.T) {
	bucket := NewTokenBucket(3, 1, time.Hour)

	for i := 0; i < 3; i++ {
		allowed, _ := bucket.Allow()
		assert.True(t, allowed, "request %d should pass", i)
	}

	allowed, retryAfter := bucket.Allow()
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))
}

func TestTokenBucketRefills(t *testing.T) {
	bucket := NewTokenBucket(1, 1, 10*time.Millisecond)

	allowed, _ := bucket.Allow()
	assert.True(t, allowed)
	allowed, _ = bucket.Allow()
	assert.False(t, allowed)

	time.Sleep(25 * time.Millisecond)

	allowed, _ = bucket.Allow()
	assert.True(t, allowed)
}

func TestRateLimiterIsolatesAdminsAndActions(t *testing.T) {
	limiter := NewRateLimiter()

	// Drain admin-1's seller_status budget.
	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("admin-1", "seller_status")
		assert.True(t, allowed, "request %d should pass", i)
	}
	allowed, _ := limiter.Allow("admin-1", "seller_status")
	assert.False(t, allowed)

	// A different admin and a different action keep their own budgets.
	allowed, _ = limiter.Allow("admin-2", "seller_status")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("admin-1", "case_action")
	assert.True(t, allowed)
}

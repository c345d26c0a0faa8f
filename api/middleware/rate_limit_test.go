package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterWindow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	now := time.Now()

	for i := 0; i < 3; i++ {
		assert.True(t, rl.allow("10.0.0.1", now), "request %d should pass", i+1)
	}
	assert.False(t, rl.allow("10.0.0.1", now), "fourth request should be rejected")

	// A different client has its own budget.
	assert.True(t, rl.allow("10.0.0.2", now))

	// The window expiring resets the budget.
	assert.True(t, rl.allow("10.0.0.1", now.Add(61*time.Second)))
}

func TestRateLimiterEvictsExpired(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	now := time.Now()

	rl.allow("10.0.0.1", now)
	rl.allow("10.0.0.2", now)
	rl.allow("10.0.0.3", now)

	// Once every window has lapsed, a single request from a new client
	// sweeps the stale entries instead of leaving them behind.
	rl.allow("10.0.0.4", now.Add(2*time.Minute))

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Len(t, rl.clients, 1)
	assert.Contains(t, rl.clients, "10.0.0.4")
}

func TestRateLimiterHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRateLimiter(2, time.Minute).Handler())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

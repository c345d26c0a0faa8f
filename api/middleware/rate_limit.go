package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clariohq/clario-backend/api/response"
)

type window struct {
	count   int
	resetAt time.Time
}

// RateLimiter caps requests per client IP within a fixed window.
// Expired windows are swept out at most once per period so the client
// map does not grow with every IP ever seen.
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*window
	limit     int
	period    time.Duration
	nextSweep time.Time
}

func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		period:  period,
	}
}

func (rl *RateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.After(rl.nextSweep) {
		for key, w := range rl.clients {
			if now.After(w.resetAt) {
				delete(rl.clients, key)
			}
		}
		rl.nextSweep = now.Add(rl.period)
	}

	w, ok := rl.clients[ip]
	if !ok || now.After(w.resetAt) {
		rl.clients[ip] = &window{count: 1, resetAt: now.Add(rl.period)}
		return true
	}
	if w.count >= rl.limit {
		return false
	}
	w.count++
	return true
}

// Handler is the gin middleware backed by the limiter.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP(), time.Now()) {
			c.JSON(http.StatusTooManyRequests, response.Body{
				Success: false,
				Message: "too many requests, slow down",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

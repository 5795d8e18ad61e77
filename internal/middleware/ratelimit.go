// Package middleware holds cross-cutting gin middleware.
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter throttles requests per client IP. Used on the credential
// endpoints (register, login) and the ingestion endpoints, which do
// expensive or abusable work.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*clientLimiter
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimiter allows ratePerMin requests per minute per client with
// the given burst. Idle client entries are dropped in the background.
func NewRateLimiter(ratePerMin float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		limit:    rate.Limit(ratePerMin / 60.0),
		burst:    burst,
		limiters: make(map[string]*clientLimiter),
	}
	go rl.cleanupLoop(5 * time.Minute)
	return rl
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.limiters[clientIP]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[clientIP] = entry
	}
	entry.lastAccess = time.Now()
	return entry.limiter.Allow()
}

func (rl *RateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-interval)
		rl.mu.Lock()
		for ip, entry := range rl.limiters {
			if entry.lastAccess.Before(cutoff) {
				delete(rl.limiters, ip)
			}
		}
		rl.mu.Unlock()
	}
}

package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/viggen-group/viggenweb/internal/utils"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig defines the fixed-window limit applied per client IP.
type RateLimitConfig struct {
	// Max requests allowed per window
	Max int
	// Window length
	Window time.Duration
	// Whether forwarded headers may be used to derive the client IP
	TrustProxyHeaders bool
}

type rateLimitEntry struct {
	count       int
	windowStart time.Time
}

// clientRateLimiter counts requests per key within a fixed window.
// Entries live for the process lifetime; the map is not a shared store,
// so horizontally scaled deployments under-count by design.
type clientRateLimiter struct {
	mu      sync.Mutex
	entries map[string]*rateLimitEntry
	max     int
	window  time.Duration
	now     func() time.Time
}

func newClientRateLimiter(max int, window time.Duration, now func() time.Time) *clientRateLimiter {
	if now == nil {
		now = time.Now
	}
	return &clientRateLimiter{
		entries: make(map[string]*rateLimitEntry),
		max:     max,
		window:  window,
		now:     now,
	}
}

// allow applies the fixed-window rules: first request from a key
// creates its entry, an elapsed window resets it, anything else
// increments the count and rejects once the count exceeds the limit.
// The mutex keeps concurrent requests from the same IP from racing the
// read-modify-write and slipping past the limit.
func (l *clientRateLimiter) allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if !ok {
		l.entries[key] = &rateLimitEntry{count: 1, windowStart: now}
		return true
	}

	if now.Sub(entry.windowStart) > l.window {
		entry.count = 1
		entry.windowStart = now
		return true
	}

	entry.count++
	return entry.count <= l.max
}

// RateLimitPerClient creates a fixed-window per-IP rate limiting
// middleware. It runs before any body parsing so over-limit requests
// cost nothing beyond the map lookup.
func RateLimitPerClient(config RateLimitConfig) gin.HandlerFunc {
	limiter := newClientRateLimiter(config.Max, config.Window, nil)

	return func(c *gin.Context) {
		ip := utils.GetClientIP(c, config.TrustProxyHeaders)
		if !limiter.allow(ip) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests — please try again later",
			})
			return
		}
		c.Next()
	}
}

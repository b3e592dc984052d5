package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestFixedWindowAllowsUpToMax(t *testing.T) {
	l := newClientRateLimiter(6, time.Minute, nil)

	for i := 0; i < 6; i++ {
		assert.True(t, l.allow("203.0.113.1"), "request %d", i+1)
	}
	assert.False(t, l.allow("203.0.113.1"))
}

func TestFixedWindowResetsAfterWindowElapses(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := newClientRateLimiter(6, time.Minute, func() time.Time { return current })

	for i := 0; i < 7; i++ {
		l.allow("203.0.113.1")
	}
	assert.False(t, l.allow("203.0.113.1"))

	// Exactly at the window boundary the window is still open
	current = current.Add(time.Minute)
	assert.False(t, l.allow("203.0.113.1"))

	// Past the boundary the count resets
	current = current.Add(time.Second)
	assert.True(t, l.allow("203.0.113.1"))
	for i := 0; i < 5; i++ {
		assert.True(t, l.allow("203.0.113.1"))
	}
	assert.False(t, l.allow("203.0.113.1"))
}

func TestFixedWindowKeysAreIndependent(t *testing.T) {
	l := newClientRateLimiter(6, time.Minute, nil)

	for i := 0; i < 7; i++ {
		l.allow("203.0.113.1")
	}
	assert.False(t, l.allow("203.0.113.1"))
	assert.True(t, l.allow("203.0.113.2"))
}

func TestRateLimitPerClientMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/submit", RateLimitPerClient(RateLimitConfig{
		Max:               2,
		Window:            time.Minute,
		TrustProxyHeaders: true,
	}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	post := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		req.Header.Set("X-Forwarded-For", ip)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, post("198.51.100.1"))
	assert.Equal(t, http.StatusOK, post("198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, post("198.51.100.1"))
	assert.Equal(t, http.StatusOK, post("198.51.100.2"))
}

func TestThrottleSetsHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", Throttle(ThrottleConfig{RPS: 10, Burst: 20}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "10", rec.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Remaining"))
}

func TestThrottleRejectsWhenExhausted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", Throttle(ThrottleConfig{RPS: 1, Burst: 1}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

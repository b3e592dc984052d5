package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ThrottleConfig defines the server-wide token bucket. This is a blunt
// overload guard in front of every route; the contact route layers its
// own per-IP fixed-window limit on top.
type ThrottleConfig struct {
	// Requests per second
	RPS int
	// Burst size
	Burst int
}

// Throttle creates a global rate limiting middleware with the given configuration
func Throttle(config ThrottleConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(config.RPS), config.Burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests — please try again later",
			})
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.RPS))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))

		c.Next()
	}
}

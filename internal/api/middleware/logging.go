package middleware

import (
	"time"

	"github.com/viggen-group/viggenweb/internal/logging"
	"github.com/viggen-group/viggenweb/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every completed request through the shared logger.
func RequestLogger(trustProxyHeaders bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		logger := logging.GetGlobalLogger()
		logger.LogHTTPRequest(
			method,
			path,
			utils.GetClientIP(c, trustProxyHeaders),
			c.Writer.Status(),
			latency.String(),
		)
	}
}

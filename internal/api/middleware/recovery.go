package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/viggen-group/viggenweb/internal/api/constants"
	"github.com/viggen-group/viggenweb/internal/logging"

	"github.com/gin-gonic/gin"
)

// Recovery turns panics into 500 responses. The stack trace goes to
// the server log only.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger := logging.GetGlobalLogger()
				logger.Error("panic recovered: %v | %s %s | %s | request_id=%s\n%s",
					rec,
					c.Request.Method,
					c.Request.URL.Path,
					c.ClientIP(),
					c.GetString(constants.ContextKeyRequestID),
					debug.Stack(),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		c.Next()
	}
}

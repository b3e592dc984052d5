package utils

import (
	"github.com/viggen-group/viggenweb/internal/api/dto/common"
	"github.com/viggen-group/viggenweb/internal/logging"

	"github.com/gin-gonic/gin"
)

// LogError logs an error with a message using the singleton logger
func LogError(err error, message string) {
	logger := logging.GetGlobalLogger()
	logger.Error("%s: %v", message, err)
}

// HandleAPIError logs the underlying error server-side and returns a
// taxonomy-level message to the client. Raw error text never leaves
// the process.
func HandleAPIError(c *gin.Context, err error, status int, code common.ErrorCode, message string) {
	logger := logging.GetGlobalLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		c.ClientIP(),
		status,
		message,
		err,
	)

	c.JSON(status, common.NewErrorResponse(code, message, nil))
}

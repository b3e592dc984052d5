package middleware

import (
	"net/http"

	"github.com/viggen-group/viggenweb/internal/api/constants"
	contactdto "github.com/viggen-group/viggenweb/internal/api/dto/v1/contact"
	"github.com/viggen-group/viggenweb/internal/api/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationMiddleware handles request parsing and validation
type ValidationMiddleware struct {
	validate *validator.Validate
}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validate: validation.New(),
	}
}

// Validator exposes the shared validator instance for handlers that
// run semantic checks after the honeypot gate.
func (m *ValidationMiddleware) Validator() *validator.Validate {
	return m.validate
}

// ParseContactRequest decodes the submission body. Only structural
// failures are rejected here; semantic validation stays in the handler
// because the honeypot check has to run first, and a honeypot hit must
// be indistinguishable from success.
func (m *ValidationMiddleware) ParseContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contactdto.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, contactdto.ErrorResponse{
				Error: "Invalid JSON payload",
			})
			return
		}

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}

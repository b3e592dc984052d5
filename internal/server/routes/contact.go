package routes

import (
	"github.com/viggen-group/viggenweb/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures the contact form route. The rate
// limiter runs first so over-limit requests are rejected before the
// body is ever parsed; parsing runs before the handler so the handler
// only sees structurally valid submissions.
func SetupContactRoutes(router *gin.Engine, contact *handlers.ContactHandler, m *Middleware) {
	api := router.Group("/api")
	{
		api.POST("/contact",
			m.ContactRateLimit,
			m.Validation.ParseContactRequest(),
			contact.Submit,
		)
	}
}

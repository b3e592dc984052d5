package routes

import (
	"github.com/viggen-group/viggenweb/internal/api/handlers"
	"github.com/viggen-group/viggenweb/internal/api/middleware"
	"github.com/viggen-group/viggenweb/internal/logging"

	"github.com/gin-gonic/gin"
)

// Handlers groups the route handlers for setup
type Handlers struct {
	Health  *handlers.HealthHandler
	Contact *handlers.ContactHandler
	Content *handlers.ContentHandler
}

// Middleware groups the per-route middleware for setup
type Middleware struct {
	Validation *middleware.ValidationMiddleware
	// ContactRateLimit is the fixed-window per-IP limiter mounted only
	// on the submission route.
	ContactRateLimit gin.HandlerFunc
}

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetGlobalLogger()

	SetupHealthRoutes(router, h.Health)
	SetupContactRoutes(router, h.Contact, m)
	SetupContentRoutes(router.Group("/api/v1"), h.Content)

	logger.Info("All routes have been set up successfully")
}

package routes

import (
	"github.com/viggen-group/viggenweb/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupContentRoutes configures the read-only content API
func SetupContentRoutes(router *gin.RouterGroup, content *handlers.ContentHandler) {
	group := router.Group("/content")
	{
		group.GET("/company", content.GetCompany)
		group.GET("/subsidiaries", content.ListSubsidiaries)
		group.GET("/subsidiaries/:slug", content.GetSubsidiary)
		group.GET("/insights", content.ListInsights)
	}
}

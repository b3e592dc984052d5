package handlers

import (
	"net/http"

	"github.com/viggen-group/viggenweb/internal/api/dto/common"
	"github.com/viggen-group/viggenweb/internal/content"
	"github.com/viggen-group/viggenweb/internal/utils"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves the informational pages' data: company
// profile, subsidiary directory, insights index.
type ContentHandler struct{}

// NewContentHandler creates a new content handler
func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

func (h *ContentHandler) GetCompany(c *gin.Context) {
	utils.HandleSuccess(c, content.Company())
}

func (h *ContentHandler) ListSubsidiaries(c *gin.Context) {
	subsidiaries := content.Subsidiaries()
	utils.HandleSuccess(c, gin.H{
		"subsidiaries": subsidiaries,
		"total":        len(subsidiaries),
	})
}

func (h *ContentHandler) GetSubsidiary(c *gin.Context) {
	slug := c.Param("slug")
	s, ok := content.SubsidiaryBySlug(slug)
	if !ok {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(common.ErrCodeNotFound, "Subsidiary not found", nil))
		return
	}
	utils.HandleSuccess(c, s)
}

func (h *ContentHandler) ListInsights(c *gin.Context) {
	var insights []content.Insight
	if tag := c.Query("tag"); tag != "" {
		insights = content.InsightsByTag(tag)
	} else {
		insights = content.Insights()
	}
	utils.HandleSuccess(c, gin.H{
		"insights": insights,
		"total":    len(insights),
	})
}

package handlers

import (
	"net/http"

	"github.com/viggen-group/viggenweb/internal/version"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	environment string
}

func NewHealthHandler(environment string) *HealthHandler {
	return &HealthHandler{environment: environment}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"environment": h.environment,
		"version":     version.Version,
	})
}

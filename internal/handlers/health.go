package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"visionstage-backend/internal/models"
)

// readiness is the part of the staging manager the health check reads.
type readiness interface {
	Ready() error
}

type HealthHandler struct {
	staging    readiness
	publishing bool
}

func NewHealthHandler(staging readiness, publishing bool) *HealthHandler {
	return &HealthHandler{staging: staging, publishing: publishing}
}

// Health godoc
// @Summary     Health check
// @Description Reports whether the API is up, whether Gemini is configured for staging and whether publishing to storage is enabled. Always 200 while the process serves requests.
// @Tags        health
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := models.HealthResponse{
		Status:     "ok",
		Gemini:     "ready",
		Publishing: "disabled",
	}
	if h.publishing {
		response.Publishing = "enabled"
	}
	if err := h.staging.Ready(); err != nil {
		response.Status = "degraded"
		response.Gemini = "not_configured"
		response.Message = err.Error()
	}
	c.JSON(http.StatusOK, response)
}

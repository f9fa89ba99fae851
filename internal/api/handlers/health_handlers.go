package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pumpsui/pumpsui_service/internal/domain/entities"
	"github.com/pumpsui/pumpsui_service/pkg/constants"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	set         *constants.Set
	environment string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(set *constants.Set, environment string) *HealthHandler {
	return &HealthHandler{set: set, environment: environment}
}

// Health reports liveness. The constant set is validated before the server
// starts, so a running process is always healthy.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} entities.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, entities.HealthResponse{
		Status:      "healthy",
		Environment: h.environment,
		Constants:   h.set.Len(),
	})
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/erp/shipping/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger is satisfied by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	Database string `json:"database" example:"connected"`
}

// HealthHandler reports whether the service can reach its database
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// Check godoc
// @ID           healthCheck
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		logger.GetGinLogger(c).Error("Database health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy", Database: "disconnected"})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Database: "connected"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ClientDesk/client-desk-backend/middleware"
	"github.com/ClientDesk/client-desk-backend/types"
)

// HealthHandler exposes liveness and readiness probes.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// LivenessCheck reports that the process is up.
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	middleware.OK(c, gin.H{"status": "up"}, &types.MetaExtras{Title: "Liveness"})
}

// ReadinessCheck reports whether the service can reach its database.
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		status := http.StatusServiceUnavailable
		c.JSON(status, types.Response{
			Meta: middleware.BuildMeta(c, status, &types.MetaExtras{Title: "Database unavailable"}),
			Data: nil,
		})
		return
	}

	middleware.OK(c, gin.H{"status": "up", "database": "up"}, &types.MetaExtras{Title: "Readiness"})
}

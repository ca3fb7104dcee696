package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ClientDesk/client-desk-backend/config"
	apperrors "github.com/ClientDesk/client-desk-backend/errors"
	"github.com/ClientDesk/client-desk-backend/handlers"
	"github.com/ClientDesk/client-desk-backend/middleware"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config        *config.Config
	ClientHandler *handlers.ClientHandler
	HealthHandler *handlers.HealthHandler
	Logger        *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Global Middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config))
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and Metrics Routes
	r.GET("/health", deps.HealthHandler.ReadinessCheck)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Client Routes
	clientRoutes := r.Group("/clients")
	{
		clientRoutes.GET("", deps.ClientHandler.ListClientsHandler)
		clientRoutes.GET("/:id", deps.ClientHandler.GetClientHandler)
	}

	// Unknown paths get the same enveloped error shape as everything else.
	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.NotFound("Resource not found"))
	})

	return r
}

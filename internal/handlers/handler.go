package handlers

import (
	"pitemp/internal/logger"
	"pitemp/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP status surface to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Versioned read-only API
	api := router.Group("/api/v1")
	{
		api.GET("/status", h.getStatus)
		api.GET("/reading/latest", h.getLatestReading)
	}

	// Live readings feed (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}

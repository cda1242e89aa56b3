package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/zonekit/zonekeeper/internal/api/handlers"
	"github.com/zonekit/zonekeeper/internal/api/middleware"
	"github.com/zonekit/zonekeeper/internal/config"

	_ "github.com/zonekit/zonekeeper/internal/api/docs" // swagger docs
)

// RegisterRoutes attaches every API endpoint to r. The health endpoint stays
// reachable without the API key so load balancers can probe it.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.AppConfig) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.GET("/health", h.Health)

	if cfg != nil && cfg.APIKey != "" {
		api.Use(middleware.RequireAPIKey(cfg.APIKey))
	}

	api.GET("/stats", h.Stats)

	api.GET("/zones", h.ListZones)
	api.GET("/zones/:domain", h.GetZone)
	api.POST("/zones/:domain", h.UpsertZone)
	api.PUT("/zones/:domain", h.UpsertZone)
	api.GET("/zones/:domain/file", h.GetZoneFile)
	api.DELETE("/zones/:domain", h.DeleteZone)

	api.GET("/changes", h.ListChanges)
}

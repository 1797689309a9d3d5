package routes

import (
	"github.com/gin-gonic/gin"

	catalogHandlers "helpdesk/internal/interfaces/http/handlers/catalog"
	"helpdesk/internal/interfaces/http/middleware"
)

// CatalogRouteConfig holds dependencies for requester and asset routes.
type CatalogRouteConfig struct {
	CatalogHandler *catalogHandlers.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCatalogRoutes configures requester and asset management routes.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	requesters := engine.Group("/requesters")
	requesters.Use(cfg.AuthMiddleware.RequireAuth())
	{
		requesters.POST("", cfg.CatalogHandler.CreateRequester)
		requesters.GET("", cfg.CatalogHandler.ListRequesters)
		requesters.GET("/:id", cfg.CatalogHandler.GetRequester)
		requesters.PUT("/:id", cfg.CatalogHandler.UpdateRequester)
		requesters.DELETE("/:id", cfg.CatalogHandler.DeleteRequester)
	}

	assets := engine.Group("/assets")
	assets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		assets.POST("", cfg.CatalogHandler.CreateAsset)
		assets.GET("", cfg.CatalogHandler.ListAssets)
		assets.GET("/:id", cfg.CatalogHandler.GetAsset)
		assets.PUT("/:id", cfg.CatalogHandler.UpdateAsset)
		assets.DELETE("/:id", cfg.CatalogHandler.DeleteAsset)
	}
}

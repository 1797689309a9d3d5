package routes

import (
	"github.com/gin-gonic/gin"

	statsHandlers "helpdesk/internal/interfaces/http/handlers/stats"
	"helpdesk/internal/interfaces/http/middleware"
)

// StatsRouteConfig holds dependencies for dashboard statistics routes.
type StatsRouteConfig struct {
	StatsHandler   *statsHandlers.StatsHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupStatsRoutes configures dashboard statistics routes.
func SetupStatsRoutes(engine *gin.Engine, cfg *StatsRouteConfig) {
	stats := engine.Group("/stats")
	stats.Use(cfg.AuthMiddleware.RequireAuth())
	{
		stats.GET("", cfg.StatsHandler.GetStats)
	}
}

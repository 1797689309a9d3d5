package routes

import (
	"github.com/gin-gonic/gin"

	authHandlers "helpdesk/internal/interfaces/http/handlers/auth"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *authHandlers.AuthHandler
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", cfg.AuthHandler.Login)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	intakeHandlers "helpdesk/internal/interfaces/http/handlers/intake"
)

// IntakeRouteConfig holds dependencies for the public intake route.
type IntakeRouteConfig struct {
	IntakeHandler *intakeHandlers.IntakeHandler
	RateLimit     gin.HandlerFunc
}

// SetupIntakeRoutes configures the public ticket submission route. No
// authentication: this is the walk-up form.
func SetupIntakeRoutes(engine *gin.Engine, cfg *IntakeRouteConfig) {
	handlers := []gin.HandlerFunc{}
	if cfg.RateLimit != nil {
		handlers = append(handlers, cfg.RateLimit)
	}
	handlers = append(handlers, cfg.IntakeHandler.SubmitRequest)

	engine.POST("/solicitar-ticket", handlers...)
}

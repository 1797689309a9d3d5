// Package routes provides HTTP route configurations.
package routes

import (
	"github.com/gin-gonic/gin"

	ticketHandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler  *ticketHandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes configures ticket management routes.
func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", cfg.TicketHandler.CreateTicket)
		tickets.GET("", cfg.TicketHandler.ListTickets)
		tickets.GET("/:id", cfg.TicketHandler.GetTicket)
		tickets.GET("/:id/document", cfg.TicketHandler.GetTicketDocument)
	}

	// Updates come from both the staff dashboard and the kiosk status
	// page, so they only carry optional auth. Attribution falls back to
	// the technician field in the request body.
	updates := engine.Group("/tickets")
	updates.Use(cfg.AuthMiddleware.OptionalAuth())
	{
		updates.PATCH("/:id", cfg.TicketHandler.UpdateTicket)
		updates.PUT("/:id", cfg.TicketHandler.UpdateTicket)
	}
}

// Package http wires repositories, use cases, and handlers into a gin
// engine.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authUsecases "helpdesk/internal/application/auth/usecases"
	"helpdesk/internal/application/catalog"
	intakeUsecases "helpdesk/internal/application/intake/usecases"
	statsUsecases "helpdesk/internal/application/stats/usecases"
	ticketUsecases "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/documents"
	"helpdesk/internal/infrastructure/email"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/infrastructure/repository"
	authHandlers "helpdesk/internal/interfaces/http/handlers/auth"
	catalogHandlers "helpdesk/internal/interfaces/http/handlers/catalog"
	intakeHandlers "helpdesk/internal/interfaces/http/handlers/intake"
	statsHandlers "helpdesk/internal/interfaces/http/handlers/stats"
	ticketHandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/logger"
)

// Router holds the gin engine and the route configurations built from
// the application dependencies.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	log            logger.Interface
	authMiddleware *middleware.AuthMiddleware
	intakeLimit    gin.HandlerFunc

	ticketHandler  *ticketHandlers.TicketHandler
	intakeHandler  *intakeHandlers.IntakeHandler
	authHandler    *authHandlers.AuthHandler
	statsHandler   *statsHandlers.StatsHandler
	catalogHandler *catalogHandlers.CatalogHandler
}

// NewRouter creates a new HTTP router with all dependencies wired.
// redisClient may be nil, in which case the intake rate limit is
// disabled.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(db)
	requesterRepo := repository.NewRequesterRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	userRepo := repository.NewUserRepository(db)

	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	renderer := documents.NewRenderer(&cfg.Documents)
	dispatcher := email.NewSMTPDispatcher(&cfg.Email)

	publisher := ticketUsecases.NewTicketPublisher(
		ticketRepo, requesterRepo, assetRepo,
		renderer, dispatcher, cfg.Email.OpsAddress, log,
	)

	createTicketUC := ticketUsecases.NewCreateTicketUseCase(ticketRepo, requesterRepo, assetRepo, publisher, log)
	updateTicketUC := ticketUsecases.NewUpdateTicketUseCase(ticketRepo, publisher, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(ticketRepo)
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(ticketRepo)
	getDocumentUC := ticketUsecases.NewGetTicketDocumentUseCase(ticketRepo, publisher, log)

	submitRequestUC := intakeUsecases.NewSubmitRequestUseCase(requesterRepo, assetRepo, createTicketUC, log)
	getStatsUC := statsUsecases.NewGetStatsUseCase(ticketRepo, userRepo, log)
	loginUC := authUsecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	catalogService := catalog.NewService(requesterRepo, assetRepo, log)

	var intakeLimit gin.HandlerFunc
	if redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		limitCfg := ratelimit.Config{RequestsPerMinute: cfg.Intake.RateLimitPerMinute}
		intakeLimit = middleware.IntakeRateLimit(limiter, limitCfg, log)
	}

	return &Router{
		engine:         engine,
		cfg:            cfg,
		log:            log,
		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),
		intakeLimit:    intakeLimit,
		ticketHandler:  ticketHandlers.NewTicketHandler(createTicketUC, updateTicketUC, getTicketUC, listTicketsUC, getDocumentUC),
		intakeHandler:  intakeHandlers.NewIntakeHandler(submitRequestUC),
		authHandler:    authHandlers.NewAuthHandler(loginUC),
		statsHandler:   statsHandlers.NewStatsHandler(getStatsUC),
		catalogHandler: catalogHandlers.NewCatalogHandler(catalogService),
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
	})

	routes.SetupIntakeRoutes(r.engine, &routes.IntakeRouteConfig{
		IntakeHandler: r.intakeHandler,
		RateLimit:     r.intakeLimit,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupStatsRoutes(r.engine, &routes.StatsRouteConfig{
		StatsHandler:   r.statsHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupCatalogRoutes(r.engine, &routes.CatalogRouteConfig{
		CatalogHandler: r.catalogHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

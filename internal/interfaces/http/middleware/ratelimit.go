package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// IntakeRateLimit throttles the public submission endpoint per client
// IP. Limiter errors fail open; a redis outage must not take the
// intake form down with it.
func IntakeRateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.Config, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow("intake:"+c.ClientIP(), cfg)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"client_ip", c.ClientIP(), "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many requests, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

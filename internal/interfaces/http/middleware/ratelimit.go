package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inventorydb/backend/internal/domain/shared"
	"github.com/inventorydb/backend/internal/infrastructure/cache"
	"go.uber.org/zap"
)

// RateLimitConfig configures RateLimit
type RateLimitConfig struct {
	// Counter holds the per-window hit counts, in Redis or in process
	Counter cache.Counter
	// Limit is the number of requests allowed per window and key
	Limit int
	Window time.Duration
	// KeyFunc derives the rate limit key. Defaults to route plus client IP.
	KeyFunc func(*gin.Context) string
	Logger  *zap.Logger
}

// RateLimit limits requests per key within fixed windows. When the counter
// store fails the request is let through.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = RouteClientKey
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	limit := strconv.Itoa(cfg.Limit)

	return func(c *gin.Context) {
		key := cfg.KeyFunc(c)

		count, err := cfg.Counter.Incr(c.Request.Context(), key, cfg.Window)
		if err != nil {
			cfg.Logger.Error("Rate limit counter failed", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		remaining := int64(cfg.Limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(cfg.Limit) {
			cfg.Logger.Warn("Rate limit exceeded",
				zap.String("key", key),
				zap.Int64("count", count),
			)
			c.Header("Retry-After", strconv.Itoa(int(cfg.Window.Seconds())))
			AbortWithDetail(c, http.StatusTooManyRequests, shared.ErrTooManyRequests.Message)
			return
		}

		c.Next()
	}
}

// RouteClientKey keys requests by matched route and client IP, so each
// limited endpoint has its own budget.
func RouteClientKey(c *gin.Context) string {
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	return route + ":" + c.ClientIP()
}

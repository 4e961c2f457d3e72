package cache

import (
	"github.com/inventorydb/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewCounter returns a Redis-backed counter when Redis is enabled and
// reachable, and an in-memory counter otherwise.
func NewCounter(cfg config.RedisConfig, logger *zap.Logger) Counter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.Enabled {
		logger.Info("Redis disabled, using in-memory rate limit counter")
		return NewMemoryCounter(0)
	}

	counter, err := NewRedisCounter(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory rate limit counter. "+
			"Limits are enforced per instance.",
			zap.String("addr", cfg.Addr()),
			zap.Error(err),
		)
		return NewMemoryCounter(0)
	}

	logger.Info("using Redis rate limit counter", zap.String("addr", cfg.Addr()))
	return counter
}

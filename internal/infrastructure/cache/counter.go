// Package cache provides Redis and in-memory counters for rate limiting.
package cache

import (
	"context"
	"time"
)

// Counter counts hits per key inside fixed windows. The first Incr of a
// window starts it; the count resets once the window has elapsed.
type Counter interface {
	// Incr adds one hit for key and returns the count within the current window.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
	Close() error
}

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/inventorydb/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "ratelimit:"

// RedisCounter implements Counter with a Lua INCR+PEXPIRE script, so every instance
// behind a load balancer shares the same windows.
type RedisCounter struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisCounter connects to Redis and verifies the connection
func NewRedisCounter(cfg config.RedisConfig) (*RedisCounter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisCounterWithClient(client, ""), nil
}

// NewRedisCounterWithClient wraps an existing client
func NewRedisCounterWithClient(client *redis.Client, keyPrefix string) *RedisCounter {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisCounter{client: client, keyPrefix: keyPrefix}
}

// incrScript bumps the window counter and arms its expiry in one atomic
// step. A key left without a TTL gets one on the next hit.
var incrScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// Incr implements Counter
func (c *RedisCounter) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	count, err := incrScript.Run(ctx, c.client, []string{c.keyPrefix + key}, ttl.Milliseconds()).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}
	return count, nil
}

// Close closes the Redis client
func (c *RedisCounter) Close() error {
	return c.client.Close()
}

var _ Counter = (*RedisCounter)(nil)

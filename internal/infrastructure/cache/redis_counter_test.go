package cache

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// redisClientForTest connects to TEST_REDIS_ADDR when set, otherwise starts
// a Redis container.
func redisClientForTest(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		testcontainers.SkipIfProviderIsNotHealthy(t)

		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{"6379/tcp"},
				WaitingFor: wait.ForLog("Ready to accept connections").
					WithStartupTimeout(60 * time.Second),
			},
			Started: true,
		})
		require.NoError(t, err, "Failed to start Redis container")
		t.Cleanup(func() {
			if err := container.Terminate(ctx); err != nil {
				t.Logf("Warning: Failed to terminate container: %v", err)
			}
		})

		addr, err = container.Endpoint(ctx, "")
		require.NoError(t, err)
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRedisCounter_Incr(t *testing.T) {
	client := redisClientForTest(t)
	prefix := "test:" + uuid.NewString() + ":"
	c := NewRedisCounterWithClient(client, prefix)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := c.Incr(ctx, "1.2.3.4", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	ttl, err := client.TTL(ctx, prefix+"1.2.3.4").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestRedisCounter_WindowExpires(t *testing.T) {
	client := redisClientForTest(t)
	c := NewRedisCounterWithClient(client, "test:"+uuid.NewString()+":")
	ctx := context.Background()

	_, err := c.Incr(ctx, "k", time.Second)
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)
	got, err := c.Incr(ctx, "k", time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestRedisCounter_RestoresMissingExpiry(t *testing.T) {
	client := redisClientForTest(t)
	prefix := "test:" + uuid.NewString() + ":"
	c := NewRedisCounterWithClient(client, prefix)
	ctx := context.Background()

	// A window key that lost its TTL must not pin the client at its count
	require.NoError(t, client.Set(ctx, prefix+"stuck", 41, 0).Err())

	got, err := c.Incr(ctx, "stuck", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	ttl, err := client.TTL(ctx, prefix+"stuck").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestRedisCounter_ConcurrentHitsShareWindow(t *testing.T) {
	client := redisClientForTest(t)
	prefix := "test:" + uuid.NewString() + ":"
	c := NewRedisCounterWithClient(client, prefix)
	ctx := context.Background()

	const hits = 25
	var wg sync.WaitGroup
	for i := 0; i < hits; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Incr(ctx, "burst", time.Minute)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	count, err := client.Get(ctx, prefix+"burst").Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(hits), count)

	ttl, err := client.TTL(ctx, prefix+"burst").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestNewCounter_Fallback(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		c := NewCounter(config.RedisConfig{Enabled: false}, zap.NewNop())
		defer c.Close()
		assert.IsType(t, &MemoryCounter{}, c)
	})

	t.Run("unreachable", func(t *testing.T) {
		c := NewCounter(config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1}, nil)
		defer c.Close()
		assert.IsType(t, &MemoryCounter{}, c)
	})
}

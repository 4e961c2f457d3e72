package cache

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count     int64
	expiresAt time.Time
}

// MemoryCounter implements Counter with an in-process map.
// Counts are not shared between instances.
type MemoryCounter struct {
	mu        sync.Mutex
	windows   map[string]*window
	now       func() time.Time
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewMemoryCounter creates a MemoryCounter and starts a goroutine that
// drops expired windows every cleanupInterval.
func NewMemoryCounter(cleanupInterval time.Duration) *MemoryCounter {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}
	c := &MemoryCounter{
		windows:  make(map[string]*window),
		now:      time.Now,
		stopChan: make(chan struct{}),
	}

	c.wg.Add(1)
	go c.cleanupLoop(cleanupInterval)

	return c
}

// Incr implements Counter
func (c *MemoryCounter) Incr(_ context.Context, key string, ttl time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	w, ok := c.windows[key]
	if !ok || !now.Before(w.expiresAt) {
		w = &window{expiresAt: now.Add(ttl)}
		c.windows[key] = w
	}
	w.count++
	return w.count, nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (c *MemoryCounter) Close() error {
	c.closeOnce.Do(func() {
		close(c.stopChan)
		c.wg.Wait()
	})
	return nil
}

// Size returns the number of tracked keys
func (c *MemoryCounter) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.windows)
}

func (c *MemoryCounter) cleanupLoop(interval time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *MemoryCounter) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, w := range c.windows {
		if !now.Before(w.expiresAt) {
			delete(c.windows, key)
		}
	}
}

var _ Counter = (*MemoryCounter)(nil)

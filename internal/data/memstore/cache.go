package memstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hustlehub/hustle-api/internal/core"
)

// Cache is an in-process core.CacheRepository with per-key expiry.
type Cache struct {
	mu    sync.Mutex
	clock Clock
	items map[string]cacheItem
}

type cacheItem struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

var _ core.CacheRepository = (*Cache)(nil)

// NewCache creates an empty Cache. A nil clock uses system time.
func NewCache(clock Clock) *Cache {
	if clock == nil {
		clock = systemClock{}
	}
	return &Cache{clock: clock, items: make(map[string]cacheItem)}
}

// Set stores a copy of value. A zero TTL never expires.
func (c *Cache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	item := cacheItem{value: append([]byte(nil), value...)}
	if ttl > 0 {
		item.expiresAt = c.clock.Now().Add(ttl)
	}
	c.mu.Lock()
	c.items[key] = item
	c.mu.Unlock()
	return nil
}

// Get returns the value for key, or nil when missing or expired.
func (c *Cache) Get(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[key]
	if !ok {
		return nil, nil
	}
	if !item.expiresAt.IsZero() && !c.clock.Now().Before(item.expiresAt) {
		delete(c.items, key)
		return nil, nil
	}
	return append([]byte(nil), item.value...), nil
}

// Delete removes key and reports whether it was present.
func (c *Cache) Delete(_ context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("key cannot be empty")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	delete(c.items, key)
	return ok, nil
}

// Health always succeeds.
func (c *Cache) Health(context.Context) error { return nil }

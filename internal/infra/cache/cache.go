package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"
	"golang.org/x/sync/singleflight"
)

// Cache stores opaque encoded payloads with a TTL. Callers own the encoding so
// that in-process and remote backends behave the same way.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool
	Delete(ctx context.Context, key string)
	GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() ([]byte, error)) ([]byte, error)
}

// RistrettoCache is the in-process Cache backend.
type RistrettoCache struct {
	store       *ristretto.Cache
	singleGroup singleflight.Group
	config      *CacheConfig
}

// CacheConfig holds configuration for the cache
type CacheConfig struct {
	// MaxCost is the maximum cost of the cache (in bytes)
	MaxCost int64
	// NumCounters is the number of counters for the cache
	NumCounters int64
	// BufferItems is the number of items to buffer
	BufferItems int64
}

// DefaultConfig returns a default cache configuration
func DefaultConfig() *CacheConfig {
	return &CacheConfig{
		MaxCost:     64 << 20, // 64MB
		NumCounters: 1e6,
		BufferItems: 64,
	}
}

var _ Cache = (*RistrettoCache)(nil)

func New(config *CacheConfig) (*RistrettoCache, error) {
	if config == nil {
		config = DefaultConfig()
	}

	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: config.NumCounters,
		MaxCost:     config.MaxCost,
		BufferItems: config.BufferItems,
	})
	if err != nil {
		return nil, err
	}

	return &RistrettoCache{
		store:  store,
		config: config,
	}, nil
}

func (c *RistrettoCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if ctx.Err() != nil {
		return nil, false
	}

	value, found := c.store.Get(key)
	if !found {
		return nil, false
	}

	data, ok := value.([]byte)
	return data, ok
}

// Set stores value with a cost equal to its size. The write is flushed before
// returning so that a following Delete cannot be overtaken by a buffered Set.
func (c *RistrettoCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}

	accepted := c.store.SetWithTTL(key, value, int64(len(value))+1, ttl)
	c.store.Wait()
	return accepted
}

func (c *RistrettoCache) Delete(ctx context.Context, key string) {
	c.store.Del(key)
	c.store.Wait()
}

// GetOrSet retrieves a value from the cache, or loads and stores it if not found.
// Concurrent loads of the same key are collapsed with singleflight.
func (c *RistrettoCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() ([]byte, error)) ([]byte, error) {
	if value, found := c.Get(ctx, key); found {
		return value, nil
	}

	value, err, _ := c.singleGroup.Do(key, func() (any, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if value, found := c.Get(ctx, key); found {
			return value, nil
		}

		value, err := loader()
		if err != nil {
			return nil, err
		}

		c.Set(ctx, key, value, ttl)
		return value, nil
	})
	if err != nil {
		return nil, err
	}

	return value.([]byte), nil
}

// NoopCache disables caching; every GetOrSet calls the loader.
type NoopCache struct{}

var _ Cache = NoopCache{}

func (NoopCache) Get(context.Context, string) ([]byte, bool)                    { return nil, false }
func (NoopCache) Set(context.Context, string, []byte, time.Duration) bool       { return false }
func (NoopCache) Delete(context.Context, string)                                {}
func (NoopCache) GetOrSet(_ context.Context, _ string, _ time.Duration, loader func() ([]byte, error)) ([]byte, error) {
	return loader()
}

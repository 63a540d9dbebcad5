// Package cache provides an optional redis-backed JSON cache. The whole
// package is nil-safe: when REDIS_ADDR is not configured Connect returns nil
// and every Cache method degrades to a miss, so callers never branch on
// whether caching is enabled.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"backend-tripplanner/internal/config"

	"github.com/redis/go-redis/v9"
)

func Connect(cfg config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
}

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Get unmarshals the cached value for key into out. Returns false on a miss,
// a disabled cache, or any redis/decode error.
func (c *Cache) Get(ctx context.Context, key string, out any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

// Set stores v under key with the cache TTL. Best effort: failures are
// dropped so a broken cache never fails a request.
func (c *Cache) Set(ctx context.Context, key string, v any) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

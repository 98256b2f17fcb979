package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "github.com/shimokura-meg/schedule-checklist/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyView = "view:"

// ViewCache caches built date-grouped views in Redis, keyed by the day
// they were built for. Every mutation invalidates all view keys.
type ViewCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewViewCache returns a new ViewCache.
func NewViewCache(rdb *redis.Client, ttl time.Duration) *ViewCache {
	return &ViewCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached view for key, or nil if miss.
func (c *ViewCache) Get(ctx context.Context, key string) ([]dom.DateGroup, error) {
	b, err := c.rdb.Get(ctx, keyView+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var groups []dom.DateGroup
	if err := json.Unmarshal(b, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Set stores the view under key.
func (c *ViewCache) Set(ctx context.Context, key string, groups []dom.DateGroup) error {
	b, err := json.Marshal(groups)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyView+key, b, c.ttl).Err()
}

// Invalidate removes every cached view (cache invalidation on write).
func (c *ViewCache) Invalidate(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, keyView+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Package cache holds small Redis-backed caches for slow-changing provider
// data.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/leadwise-ai/scheduling-platform/pkg/logging"
)

const defaultTimezoneTTL = 12 * time.Hour

// TimezoneCache caches provider location timezones. A location's timezone
// changes rarely, and resolving it costs a provider round trip per request
// otherwise.
type TimezoneCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *logging.Logger
}

func NewTimezoneCache(rdb *redis.Client, ttl time.Duration, logger *logging.Logger) *TimezoneCache {
	if ttl <= 0 {
		ttl = defaultTimezoneTTL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &TimezoneCache{rdb: rdb, ttl: ttl, logger: logger}
}

// Resolve returns the cached timezone for the provider location, calling
// fetch on a miss. Cache failures fall through to fetch; the cache is an
// optimization, never a dependency.
func (c *TimezoneCache) Resolve(ctx context.Context, providerName, locationID string, fetch func(ctx context.Context) (string, error)) (string, error) {
	key := fmt.Sprintf("tz:%s:%s", providerName, locationID)

	if c.rdb != nil && locationID != "" {
		val, err := c.rdb.Get(ctx, key).Result()
		if err == nil && val != "" {
			return val, nil
		}
		if err != nil && !errors.Is(err, redis.Nil) {
			c.logger.Warn("timezone cache read failed", "error", err, "key", key)
		}
	}

	tz, err := fetch(ctx)
	if err != nil {
		return "", err
	}

	if c.rdb != nil && locationID != "" && tz != "" {
		if err := c.rdb.Set(ctx, key, tz, c.ttl).Err(); err != nil {
			c.logger.Warn("timezone cache write failed", "error", err, "key", key)
		}
	}
	return tz, nil
}

package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis"
)

const keyPrefix = "weather"

// CachedProvider keeps reports of the wrapped provider in Redis. Coordinates are rounded to two
// decimals, roughly a kilometre, so nearby clients share an entry.
type CachedProvider struct {
	logger   *slog.Logger
	redis    *redis.Client
	provider Provider
	ttl      time.Duration
}

func NewCachedProvider(logger *slog.Logger, redis *redis.Client, provider Provider, ttl time.Duration) CachedProvider {
	return CachedProvider{
		logger:   logger,
		redis:    redis,
		provider: provider,
		ttl:      ttl,
	}
}

func (c CachedProvider) Current(ctx context.Context, lat, lon float64) (Report, error) {
	key := cacheKey(lat, lon)
	client := c.redis.WithContext(ctx)

	data, err := client.Get(key).Bytes()
	if err == nil {
		var report Report
		if err := json.Unmarshal(data, &report); err == nil {
			return report, nil
		}
		c.logger.WarnContext(ctx, "Discarding malformed weather cache entry", "key", key)
	} else if !errors.Is(err, redis.Nil) {
		c.logger.WarnContext(ctx, "Failed to read weather cache", "key", key, "error", err)
	}

	report, err := c.provider.Current(ctx, lat, lon)
	if err != nil {
		return Report{}, err
	}

	data, err = json.Marshal(report)
	if err != nil {
		return Report{}, fmt.Errorf("failed to marshal weather report: %v", err)
	}
	if err := client.Set(key, data, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Failed to write weather cache", "key", key, "error", err)
	}

	return report, nil
}

func cacheKey(lat, lon float64) string {
	return fmt.Sprintf("%s:%.2f:%.2f", keyPrefix, lat, lon)
}

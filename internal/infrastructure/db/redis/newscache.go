package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eadmin-africa/portal-api/internal/core/ports"
)

// NewsCache stores curated news per topic in Redis with a bounded TTL.
// Key format: news:<topic>
type NewsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewNewsCache creates a NewsCache wrapping the given Redis client.
func NewNewsCache(client *redis.Client, ttl time.Duration) *NewsCache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &NewsCache{client: client, ttl: ttl}
}

// Get returns the cached result for the topic and whether it was present.
func (c *NewsCache) Get(ctx context.Context, topic string) (ports.NewsResult, bool, error) {
	raw, err := c.client.Get(ctx, c.key(topic)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.NewsResult{}, false, nil
	}
	if err != nil {
		return ports.NewsResult{}, false, fmt.Errorf("news cache get: %w", err)
	}

	var result ports.NewsResult
	if err := json.Unmarshal(raw, &result); err != nil {
		// corrupted entry, treat as a miss
		return ports.NewsResult{}, false, nil
	}
	return result, true, nil
}

// Set stores the result for the topic, expiring after the configured TTL.
func (c *NewsCache) Set(ctx context.Context, topic string, result ports.NewsResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("news cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(topic), raw, c.ttl).Err()
}

func (c *NewsCache) key(topic string) string {
	return "news:" + topic
}

// Package cache holds the Redis-backed caches the handlers read through. The
// interfaces exist so tests can substitute in-memory fakes.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"nextstep-career-api/internal/logger"
	"nextstep-career-api/models"
)

const topicsKey = "topics:popular"

// TopicsCache holds the computed popular-topics snapshot between requests.
type TopicsCache interface {
	Get(ctx context.Context) (models.PopularTopics, bool)
	Set(ctx context.Context, topics models.PopularTopics)
}

// RedisTopics caches the snapshot in Redis with a fixed TTL. A TTL of zero
// disables caching and every lookup misses.
type RedisTopics struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisTopics(rdb *redis.Client, ttl time.Duration) *RedisTopics {
	return &RedisTopics{rdb: rdb, ttl: ttl}
}

func (c *RedisTopics) Get(ctx context.Context) (models.PopularTopics, bool) {
	if c.rdb == nil || c.ttl <= 0 {
		return models.PopularTopics{}, false
	}

	raw, err := c.rdb.Get(ctx, topicsKey).Bytes()
	if err != nil {
		return models.PopularTopics{}, false
	}

	var topics models.PopularTopics
	if err := json.Unmarshal(raw, &topics); err != nil {
		return models.PopularTopics{}, false
	}
	return topics, true
}

func (c *RedisTopics) Set(ctx context.Context, topics models.PopularTopics) {
	if c.rdb == nil || c.ttl <= 0 {
		return
	}

	raw, err := json.Marshal(topics)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, topicsKey, raw, c.ttl).Err(); err != nil {
		logger.Warn("Failed to cache popular topics", "error", err)
	}
}

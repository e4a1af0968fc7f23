// Package cache wraps Redis as a best-effort response cache.
//
// Every operation degrades to a logged failure: a cache outage must never
// fail the request that consulted it. Callers treat reads as advisory and
// writes as fire-and-forget.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key prefixes partition the flat Redis namespace by data kind.
const (
	PrefixProfile   = "profile:"
	PrefixChat      = "chat:"
	PrefixAI        = "ai:"
	PrefixSkills    = "skills:"
	PrefixGoals     = "goals:"
	PrefixAnalytics = "analytics:"
)

type Cache struct {
	client *redis.Client
}

func New(redisURL string) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Cache{client: client}, nil
}

// NewWithClient wraps an existing client. Used by tests.
func NewWithClient(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (c *Cache) Close() error {
	return c.client.Close()
}

// Get unmarshals the cached value into dest. The second return is false on
// a miss or any backend failure.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	raw, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		slog.Error("cache get failed", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		slog.Error("cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

// Set stores value as JSON. ttl <= 0 means no expiry. Returns whether the
// write took effect.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.Error("cache marshal failed", "key", key, "error", err)
		return false
	}
	if ttl <= 0 {
		err = c.client.Set(ctx, key, raw, 0).Err()
	} else {
		err = c.client.SetEx(ctx, key, raw, ttl).Err()
	}
	if err != nil {
		slog.Error("cache set failed", "key", key, "error", err)
		return false
	}
	return true
}

func (c *Cache) Delete(ctx context.Context, key string) bool {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		slog.Error("cache delete failed", "key", key, "error", err)
		return false
	}
	return true
}

func (c *Cache) Exists(ctx context.Context, key string) bool {
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		slog.Error("cache exists failed", "key", key, "error", err)
		return false
	}
	return n == 1
}

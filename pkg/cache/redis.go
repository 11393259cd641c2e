package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a Redis-backed cache for multi-instance server deployments,
// where every instance must see the same cached grids.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string // host:port
	Password string
	DB       int
	Prefix   string // key namespace, e.g. "hexforge:"
}

// NewRedisCache connects to Redis and verifies the connection with a ping.
func NewRedisCache(ctx context.Context, cfg RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return &RedisCache{client: client, prefix: cfg.Prefix}, nil
}

// Get retrieves a document from Redis. Expiry is handled server-side by
// TTL; redis.Nil is translated into [ErrCacheMiss].
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	doc, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%s: %w", key, ErrCacheMiss)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return doc, nil
}

// Set stores a document in Redis with the given TTL (zero means no expiry).
func (c *RedisCache) Set(ctx context.Context, key string, doc []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, doc, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes a document from Redis.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)

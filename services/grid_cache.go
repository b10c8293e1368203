package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	gridCachePrefix  = "shoes:grid:"
	gridVersionKey   = "shoes:grid:version"
	cacheDialTimeout = 5 * time.Second
)

// ErrCacheMiss is returned by GridCache.Get when no entry exists
var ErrCacheMiss = errors.New("cache miss")

// GridCache stores rendered catalog grids. Entries are namespaced by a
// version number; bumping the version invalidates every entry at once.
type GridCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Version(ctx context.Context) (int64, error)
	Bump(ctx context.Context) (int64, error)
}

// RedisGridCache implements GridCache on Redis
type RedisGridCache struct {
	client *redis.Client
}

// NewRedisGridCache connects to addr and verifies the connection
func NewRedisGridCache(ctx context.Context, addr string) (*RedisGridCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: cacheDialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cacheDialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &RedisGridCache{client: client}, nil
}

func (c *RedisGridCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, gridCachePrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return value, err
}

func (c *RedisGridCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, gridCachePrefix+key, value, ttl).Err()
}

func (c *RedisGridCache) Version(ctx context.Context) (int64, error) {
	version, err := c.client.Get(ctx, gridVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

func (c *RedisGridCache) Bump(ctx context.Context) (int64, error) {
	return c.client.Incr(ctx, gridVersionKey).Result()
}

// Close releases the Redis connection pool
func (c *RedisGridCache) Close() error {
	return c.client.Close()
}

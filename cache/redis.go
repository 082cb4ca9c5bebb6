package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lexishift/lexishift"
)

const defaultKeyPrefix = "lexishift:"

// Redis is a Redis-backed result cache, for sharing translation results
// across processes or batch runs.
type Redis struct {
	client    *redis.Client
	ttl       time.Duration
	keyPrefix string
}

// RedisConfig configures the Redis cache.
type RedisConfig struct {
	URL       string        // connection URL, e.g. "redis://localhost:6379"
	TTL       time.Duration // zero disables expiration
	KeyPrefix string        // defaults to "lexishift:"
}

// NewRedis connects to Redis and verifies the connection with a ping.
func NewRedis(cfg RedisConfig) (*Redis, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, &lexishift.CacheError{Message: "invalid redis URL", Cause: err}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, &lexishift.CacheError{Message: "redis ping failed", Cause: err}
	}

	return NewRedisFromClient(client, cfg.TTL, cfg.KeyPrefix), nil
}

// NewRedisFromClient wraps an existing client, as used in tests with a mock.
func NewRedisFromClient(client *redis.Client, ttl time.Duration, keyPrefix string) *Redis {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	if ttl < 0 {
		ttl = 0
	}
	return &Redis{
		client:    client,
		ttl:       ttl,
		keyPrefix: keyPrefix,
	}
}

// Get retrieves a cached result. Backend errors degrade to a cache miss: a
// flaky Redis must never fail a translation.
func (c *Redis) Get(key string) (string, bool) {
	val, err := c.client.Get(context.Background(), c.keyPrefix+key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores a result under the prefixed key.
func (c *Redis) Set(key string, value string) error {
	if err := c.client.Set(context.Background(), c.keyPrefix+key, value, c.ttl).Err(); err != nil {
		return &lexishift.CacheError{Message: "redis set failed", Cause: err}
	}
	return nil
}

// Entries scans the prefixed keyspace and returns all stored results, for
// snapshot export.
func (c *Redis) Entries() (map[string]string, error) {
	ctx := context.Background()
	out := make(map[string]string)

	iter := c.client.Scan(ctx, 0, c.keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		fullKey := iter.Val()
		val, err := c.client.Get(ctx, fullKey).Result()
		if err != nil {
			continue
		}
		out[fullKey[len(c.keyPrefix):]] = val
	}
	if err := iter.Err(); err != nil {
		return nil, &lexishift.CacheError{Message: "redis scan failed", Cause: err}
	}
	return out, nil
}

// Ping tests the connection.
func (c *Redis) Ping() error {
	return c.client.Ping(context.Background()).Err()
}

// Close closes the underlying client.
func (c *Redis) Close() error {
	return c.client.Close()
}

var _ lexishift.TranslationCache = (*Redis)(nil)

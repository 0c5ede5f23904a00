// Package cache stores normalization results keyed by form and content
// digest, so repeat requests for the same document skip the engine.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache errors
var (
	ErrCacheMiss        = errors.New("cache miss")
	ErrCacheUnavailable = errors.New("cache unavailable")
)

// Cache is the result cache consumed by the HTTP service. A miss is
// reported as ErrCacheMiss, never as an empty result: the empty string
// is a valid normalization output.
type Cache interface {
	Get(ctx context.Context, form, text string) (string, error)
	Set(ctx context.Context, form, text, normalized string) error
	IsHealthy(ctx context.Context) bool
}

// Noop is the Cache used when no Redis address is configured: every
// lookup misses and every store is dropped.
type Noop struct{}

// Get implements Cache.
func (Noop) Get(ctx context.Context, form, text string) (string, error) {
	return "", ErrCacheMiss
}

// Set implements Cache.
func (Noop) Set(ctx context.Context, form, text, normalized string) error {
	return nil
}

// IsHealthy implements Cache.
func (Noop) IsHealthy(ctx context.Context) bool {
	return true
}

// Redis is a Cache backed by a Redis instance.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to addr and verifies the connection with a ping.
func NewRedis(ctx context.Context, addr, password string, db int, ttl time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}
	return &Redis{client: client, ttl: ttl}, nil
}

// key digests the input with SHA-256. The digest must be collision-safe:
// a collision here would serve one document's normalization for another.
func key(form, text string) string {
	sum := sha256.Sum256([]byte(text))
	return "unorm:" + form + ":" + hex.EncodeToString(sum[:])
}

// Get implements Cache.
func (r *Redis) Get(ctx context.Context, form, text string) (string, error) {
	val, err := r.client.Get(ctx, key(form, text)).Result()
	if err == redis.Nil {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}
	return val, nil
}

// Set implements Cache.
func (r *Redis) Set(ctx context.Context, form, text, normalized string) error {
	if err := r.client.Set(ctx, key(form, text), normalized, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}
	return nil
}

// IsHealthy implements Cache.
func (r *Redis) IsHealthy(ctx context.Context) bool {
	return r.client.Ping(ctx).Err() == nil
}

// Close releases the underlying connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}

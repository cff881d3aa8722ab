package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis persists the collection under a single Redis key.
type Redis struct {
	client *redis.Client
	key    string
}

// NewRedis creates a Redis-backed medium. An empty key falls back to
// DefaultKey.
func NewRedis(client *redis.Client, key string) *Redis {
	if key == "" {
		key = DefaultKey
	}
	return &Redis{
		client: client,
		key:    key,
	}
}

// Read fetches the stored payload. A missing key reports ok=false.
func (r *Redis) Read(ctx context.Context) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: failed to read key %q: %v", ErrUnavailable, r.key, err)
	}
	return data, true, nil
}

// Write replaces the stored payload. The key carries no TTL: listings live
// until deleted.
func (r *Redis) Write(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: failed to write key %q: %v", ErrUnavailable, r.key, err)
	}
	return nil
}

// Erase removes the key.
func (r *Redis) Erase(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("%w: failed to erase key %q: %v", ErrUnavailable, r.key, err)
	}
	return nil
}

// Ping verifies the connection, for readiness checks.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

package store

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisKV is a Redis-backed KV. Reads fail safe: missing keys and
// connectivity errors both read as absent data, so callers degrade to an
// empty collection instead of surfacing storage trouble. Write errors are
// returned as-is.
type RedisKV struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed KV.
func NewRedis(addr, password string, db int) *RedisKV {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &RedisKV{client: redis.NewClient(opts)}
}

// Get returns the value for key, or nil if missing or redis unavailable.
func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	if r == nil || r.client == nil {
		return nil, nil
	}
	res, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		// fail safe: behave like an unwritten key
		return nil, nil
	}
	return res, nil
}

// Set stores value under key with no expiry.
func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// Delete removes a key.
func (r *RedisKV) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Ping verifies connectivity to the backend.
func (r *RedisKV) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
}

// NewRedis returns a store backed by the Redis server at addr
func NewRedis(addr string) (KV, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	return NewRedisFromClient(redis.NewClient(&redis.Options{Addr: addr})), nil
}

// NewRedisFromClient wraps an existing client. Closing the store closes it.
func NewRedisFromClient(client *redis.Client) KV {
	return &redisStore{client: client}
}

func (r *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error reading %s from redis: %w", key, err)
	}
	return v, true, nil
}

func (r *redisStore) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("error writing %s to redis: %w", key, err)
	}
	return nil
}

func (r *redisStore) Close() error {
	return r.client.Close()
}

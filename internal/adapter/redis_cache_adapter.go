package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quiz-crew/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCacheAdapter implements domain.Cache on a Redis client.
type RedisCacheAdapter struct {
	client *redis.Client
}

// NewRedisCacheAdapter expects a connected *redis.Client.
func NewRedisCacheAdapter(client *redis.Client) domain.Cache {
	return &RedisCacheAdapter{client: client}
}

// Get translates redis.Nil to domain.ErrCacheMiss.
func (r *RedisCacheAdapter) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrCacheMiss
		}
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

func (r *RedisCacheAdapter) SetIfAbsent(ctx context.Context, key string, value string, expiration time.Duration) (bool, error) {
	stored, err := r.client.SetNX(ctx, key, value, expiration).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx %s: %w", key, err)
	}
	return stored, nil
}

func (r *RedisCacheAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

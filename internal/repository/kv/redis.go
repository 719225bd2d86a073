package kv

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/findhelp-service/internal/domain/repository"
)

const keyPrefix = "kv:"

type redisRepository struct {
	client *redis.Client
}

// NewRedisRepository backs the key-value store with Redis. Entries share the
// instance with the cache but live under their own prefix.
func NewRedisRepository(client *redis.Client) repository.KVRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, nil
}

func (r *redisRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

func (r *redisRepository) Close() error {
	return nil
}

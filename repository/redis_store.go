// file: repository/redis_store.go

package repository

import (
	"context"
	"errors"
	"scoring-api/logger"
	"time"

	"github.com/redis/go-redis/v9"
)

// ICacheClient is the subset of the Redis client used by RedisStore.
// *redis.Client satisfies it; tests supply a mock.
type ICacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisStore implements Store on top of Redis.
type RedisStore struct {
	client ICacheClient
}

func NewRedisStore(client ICacheClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithField("key", key).Warn("Redis GET failed")
		return "", err
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logger.Log.WithError(err).WithField("key", key).Warn("Redis SET failed")
		return err
	}
	return nil
}

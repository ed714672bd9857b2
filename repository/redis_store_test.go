// file: repository/redis_store_test.go

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockCacheClient struct{ mock.Mock }

func (m *mockCacheClient) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.StringCmd)
}

func (m *mockCacheClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(*redis.StatusCmd)
}

func TestRedisStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		client := new(mockCacheClient)
		client.On("Get", ctx, "i:1").Return(redis.NewStringResult(`["books"]`, nil)).Once()

		value, err := NewRedisStore(client).Get(ctx, "i:1")

		assert.NoError(t, err)
		assert.Equal(t, `["books"]`, value)
		client.AssertExpectations(t)
	})

	t.Run("miss", func(t *testing.T) {
		client := new(mockCacheClient)
		client.On("Get", ctx, "i:2").Return(redis.NewStringResult("", redis.Nil)).Once()

		_, err := NewRedisStore(client).Get(ctx, "i:2")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("connection error", func(t *testing.T) {
		client := new(mockCacheClient)
		connErr := errors.New("connection refused")
		client.On("Get", ctx, "i:3").Return(redis.NewStringResult("", connErr)).Once()

		_, err := NewRedisStore(client).Get(ctx, "i:3")

		assert.ErrorIs(t, err, connErr)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestRedisStore_Set(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		client := new(mockCacheClient)
		client.On("Set", ctx, "uid:abc", "3", time.Hour).Return(redis.NewStatusResult("OK", nil)).Once()

		err := NewRedisStore(client).Set(ctx, "uid:abc", "3", time.Hour)

		assert.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("failure", func(t *testing.T) {
		client := new(mockCacheClient)
		client.On("Set", ctx, "uid:abc", "3", time.Hour).Return(redis.NewStatusResult("", errors.New("readonly"))).Once()

		err := NewRedisStore(client).Set(ctx, "uid:abc", "3", time.Hour)

		assert.Error(t, err)
	})
}

// file: repository/retry_store.go

package repository

import (
	"context"
	"errors"
	"scoring-api/logger"
	"time"

	"github.com/sirupsen/logrus"
)

// RetryStore wraps a Store with a per-attempt timeout and a bounded number
// of retries with linear backoff. ErrNotFound is never retried.
type RetryStore struct {
	next    Store
	timeout time.Duration
	retries int
	backoff time.Duration
}

func NewRetryStore(next Store, timeout time.Duration, retries int, backoff time.Duration) *RetryStore {
	return &RetryStore{next: next, timeout: timeout, retries: retries, backoff: backoff}
}

func (s *RetryStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.do(ctx, "get", key, func(ctx context.Context) error {
		var err error
		value, err = s.next.Get(ctx, key)
		return err
	})
	return value, err
}

func (s *RetryStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.do(ctx, "set", key, func(ctx context.Context) error {
		return s.next.Set(ctx, key, value, ttl)
	})
}

func (s *RetryStore) do(ctx context.Context, op, key string, call func(context.Context) error) error {
	var err error
	for attempt := 0; attempt <= s.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * s.backoff):
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)
		err = call(attemptCtx)
		cancel()

		if err == nil || errors.Is(err, ErrNotFound) {
			return err
		}

		logger.Log.WithFields(logrus.Fields{
			"op":      op,
			"key":     key,
			"attempt": attempt + 1,
		}).WithError(err).Warn("Store call failed")
	}
	return err
}

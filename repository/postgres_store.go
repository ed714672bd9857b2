// file: repository/postgres_store.go

package repository

import (
	"context"
	"database/sql"
	"errors"
	"scoring-api/logger"
	"time"

	"github.com/sirupsen/logrus"
)

// PostgresStore implements Store on the kv_store table created by the
// migrations in db/migrations. A zero ttl stores the value without expiry.
type PostgresStore struct {
	DB  *sql.DB
	now func() time.Time
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db, now: time.Now}
}

// Get returns the value stored under key unless it has expired.
func (s *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	log := logger.Log.WithField("key", key)
	log.Debug("Executing query to get value by key")

	var value string
	query := `SELECT value FROM kv_store WHERE key = $1 AND (expires_at IS NULL OR expires_at > $2)`
	err := s.DB.QueryRowContext(ctx, query, key, s.now().UTC()).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		log.WithError(err).Error("Failed to execute get value query")
		return "", err
	}
	return value, nil
}

// Set inserts or replaces the value stored under key.
func (s *PostgresStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	log := logger.Log.WithFields(logrus.Fields{
		"key": key,
		"ttl": ttl.String(),
	})
	log.Debug("Executing query to set value")

	var expiresAt sql.NullTime
	if ttl > 0 {
		expiresAt = sql.NullTime{Time: s.now().UTC().Add(ttl), Valid: true}
	}

	query := `INSERT INTO kv_store (key, value, expires_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`
	if _, err := s.DB.ExecContext(ctx, query, key, value, expiresAt); err != nil {
		log.WithError(err).Error("Failed to execute set value query")
		return err
	}
	return nil
}

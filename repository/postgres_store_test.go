// file: repository/postgres_store_test.go

package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := NewPostgresStore(db)
	store.now = func() time.Time { return time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC) }
	return store, dbMock
}

func TestPostgresStore_Get(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT value FROM kv_store WHERE key = $1`)

	t.Run("hit", func(t *testing.T) {
		store, dbMock := newMockStore(t)
		dbMock.ExpectQuery(query).
			WithArgs("i:1", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`["cars"]`))

		value, err := store.Get(ctx, "i:1")

		assert.NoError(t, err)
		assert.Equal(t, `["cars"]`, value)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		store, dbMock := newMockStore(t)
		dbMock.ExpectQuery(query).WithArgs("i:2", sqlmock.AnyArg()).WillReturnError(sql.ErrNoRows)

		_, err := store.Get(ctx, "i:2")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		store, dbMock := newMockStore(t)
		dbMock.ExpectQuery(query).WithArgs("i:3", sqlmock.AnyArg()).WillReturnError(errors.New("db down"))

		_, err := store.Get(ctx, "i:3")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestPostgresStore_Set(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO kv_store (key, value, expires_at) VALUES ($1, $2, $3)`)

	t.Run("with ttl", func(t *testing.T) {
		store, dbMock := newMockStore(t)
		dbMock.ExpectExec(query).
			WithArgs("uid:x", "1.5", time.Date(2024, time.March, 1, 11, 0, 0, 0, time.UTC)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.Set(ctx, "uid:x", "1.5", time.Hour)

		assert.NoError(t, err)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("without ttl", func(t *testing.T) {
		store, dbMock := newMockStore(t)
		dbMock.ExpectExec(query).
			WithArgs("i:1", `["a"]`, nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.Set(ctx, "i:1", `["a"]`, 0)

		assert.NoError(t, err)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		store, dbMock := newMockStore(t)
		dbMock.ExpectExec(query).WillReturnError(errors.New("disk full"))

		err := store.Set(ctx, "i:1", "v", 0)

		assert.Error(t, err)
	})
}

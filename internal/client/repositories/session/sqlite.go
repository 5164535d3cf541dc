package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/odontofast/internal/dbx"
)

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore expects the "session" table to exist (see client.InitDatabase).
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const upsertSQL = `
	INSERT INTO session (key, value, updated_at)
	VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`

func (s *SQLiteStore) Put(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, upsertSQL, key, value); err != nil {
		return fmt.Errorf("failed to put session[%s]: %w: %w", key, ErrStorageFailure, err)
	}
	return nil
}

func (s *SQLiteStore) PutAll(ctx context.Context, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, k := range keys {
			if _, err := tx.ExecContext(ctx, upsertSQL, k, values[k]); err != nil {
				return fmt.Errorf("put session[%s]: %w", k, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to put session slots: %w: %w", ErrStorageFailure, err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get session[%s]: %w: %w", key, ErrStorageFailure, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) ClearAll(ctx context.Context, keys ...string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, k := range keys {
			if _, err := tx.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, k); err != nil {
				return fmt.Errorf("delete session[%s]: %w", k, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to clear session: %w: %w", ErrStorageFailure, err)
	}
	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"time"

	domainerrors "venuealert/internal/domain/errors"
	"venuealert/internal/domain/repository"
	"venuealert/internal/errors"
)

var _ repository.KeyValueStore = (*KeyValueStore)(nil)

// KeyValueStore stores records in the kv_records table.
type KeyValueStore struct {
	db *sql.DB
}

// NewKeyValueStore wraps an opened, migrated database.
func NewKeyValueStore(db *sql.DB) *KeyValueStore {
	return &KeyValueStore{db: db}
}

// Get returns the value stored under key.
func (s *KeyValueStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_records WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", repository.ErrKeyNotFound
	}
	if err != nil {
		return "", domainerrors.NewPersistenceError(errors.WithStack(err), "get "+key)
	}

	return value, nil
}

// Set writes value under key.
func (s *KeyValueStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_records (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return domainerrors.NewPersistenceError(errors.WithStack(err), "set "+key)
	}

	return nil
}

// Delete removes key.
func (s *KeyValueStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_records WHERE key = ?`, key); err != nil {
		return domainerrors.NewPersistenceError(errors.WithStack(err), "delete "+key)
	}

	return nil
}

// DeletePrefix removes every key starting with prefix.
func (s *KeyValueStore) DeletePrefix(ctx context.Context, prefix string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM kv_records WHERE substr(key, 1, length(?)) = ?`,
		prefix, prefix,
	)
	if err != nil {
		return domainerrors.NewPersistenceError(errors.WithStack(err), "delete prefix "+prefix)
	}

	return nil
}

// Close closes the database.
func (s *KeyValueStore) Close() error {
	return errors.WithStack(s.db.Close())
}

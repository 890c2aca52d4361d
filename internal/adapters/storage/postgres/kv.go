package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pawnote/internal/ports/kv"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// KVStore implementa kv.Store sobre una tabla key/value.
type KVStore struct {
	db  *sql.DB
	now func() time.Time
}

var _ kv.Store = (*KVStore)(nil)

func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db, now: time.Now}
}

// EnsureSchema crea la tabla si no existe. Es idempotente.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("postgres: ensure schema: %w", err)
	}
	return nil
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("postgres: get %q: %w", key, err)
	}
	return v, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, key, value, s.now().UTC())
	if err != nil {
		return fmt.Errorf("postgres: set %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("postgres: remove %q: %w", key, err)
	}
	return nil
}

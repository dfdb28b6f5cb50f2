package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"mitrasafety/storefront/internal/domain"

	_ "modernc.org/sqlite"
)

const createKVTable = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// SQLiteCartState keeps the cart snapshot in a local sqlite file so it
// survives restarts without any running service.
type SQLiteCartState struct {
	db  *sql.DB
	key string
}

// OpenSQLiteCartState opens (creating if needed) the database at path.
func OpenSQLiteCartState(ctx context.Context, path, key string) (*SQLiteCartState, error) {
	if key == "" {
		key = DefaultCartKey
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create state directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite state %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createKVTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv_store table: %w", err)
	}

	return &SQLiteCartState{db: db, key: key}, nil
}

func (s *SQLiteCartState) Load(ctx context.Context) ([]domain.LineItem, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, s.key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.LineItem{}, nil // Nothing saved yet
		}
		return nil, fmt.Errorf("failed to read cart %s: %w", s.key, err)
	}

	return decodeSnapshot([]byte(value))
}

func (s *SQLiteCartState) Save(ctx context.Context, items []domain.LineItem) error {
	data, err := encodeSnapshot(items)
	if err != nil {
		return err
	}

	query := `
	INSERT INTO kv_store (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT (key)
	DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	_, err = s.db.ExecContext(ctx, query, s.key, string(data), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to save cart %s: %w", s.key, err)
	}
	return nil
}

func (s *SQLiteCartState) Close() error {
	return s.db.Close()
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresKV keeps every key as one row of the kv_store table.
type PostgresKV struct {
	DB *sql.DB
}

func NewPostgresKV(db *sql.DB) *PostgresKV {
	return &PostgresKV{DB: db}
}

func (r *PostgresKV) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(value))
	return err
}

func (r *PostgresKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := r.DB.QueryRowContext(ctx, "SELECT value FROM kv_store WHERE key = $1", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (r *PostgresKV) Delete(ctx context.Context, key string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM kv_store WHERE key = $1", key)
	return err
}

func (r *PostgresKV) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS kv_store (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

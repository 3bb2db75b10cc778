package localstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"brewshop/internal/domain"

	// Pure-Go SQLite driver, no CGO.
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS local_storage (
    namespace   TEXT NOT NULL,
    key         TEXT NOT NULL,
    value       TEXT NOT NULL,
    updated_at  TEXT NOT NULL,
    PRIMARY KEY (namespace, key)
);
`

type sqliteRepo struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and applies the schema.
// The caller owns the returned *sql.DB.
func OpenSQLite(ctx context.Context, path string) (Repository, *sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// A single writer avoids SQLITE_BUSY under concurrent sessions.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode=WAL;`); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("enable wal: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("apply schema: %w", err)
	}
	return &sqliteRepo{db: db}, db, nil
}

func (r *sqliteRepo) Get(ctx context.Context, namespace, key string) (string, error) {
	var v string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM local_storage WHERE namespace = ? AND key = ?`, namespace, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (r *sqliteRepo) Set(ctx context.Context, namespace, key, value string) error {
	const q = `
INSERT INTO local_storage (namespace, key, value, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (namespace, key) DO UPDATE SET
    value = excluded.value,
    updated_at = excluded.updated_at
`
	_, err := r.db.ExecContext(ctx, q, namespace, key, value, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

func (r *sqliteRepo) Delete(ctx context.Context, namespace, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM local_storage WHERE namespace = ? AND key = ?`, namespace, key)
	return err
}

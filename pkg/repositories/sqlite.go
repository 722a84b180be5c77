package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const saveSlot = "current"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS saves (
		slot TEXT PRIMARY KEY,
		snapshot_id TEXT NOT NULL,
		updated_at INTEGER NOT NULL,
		state TEXT NOT NULL
	);
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %v", err)
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveState(ctx context.Context, encoded string) error {
	q := `
	INSERT OR REPLACE INTO saves (slot, snapshot_id, updated_at, state)
	VALUES (?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q, saveSlot, uuid.NewString(), time.Now().UnixMilli(), encoded)
	if err != nil {
		return fmt.Errorf("failed to upsert save slot: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) LoadState(ctx context.Context) (string, error) {
	q := `
	SELECT state FROM saves WHERE slot = ?;
	`
	var encoded string
	if err := r.db.QueryRowContext(ctx, q, saveSlot).Scan(&encoded); err != nil {
		if err == sql.ErrNoRows {
			return "", &ErrNotFound{}
		}
		return "", fmt.Errorf("failed to scan save slot: %v", err)
	}

	return encoded, nil
}

func (r *SQLiteRepository) ClearState(ctx context.Context) error {
	q := `
	DELETE FROM saves WHERE slot = ?;
	`
	if _, err := r.db.ExecContext(ctx, q, saveSlot); err != nil {
		return fmt.Errorf("failed to clear save slot: %v", err)
	}

	return nil
}

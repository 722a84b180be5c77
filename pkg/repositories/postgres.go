package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	conn *pgx.Conn
}

// NewPostgresRepository connects to the database and ensures the saves
// table exists. The caller is responsible for calling Close() on the
// repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS saves (
		slot TEXT PRIMARY KEY,
		snapshot_id TEXT NOT NULL,
		updated_at BIGINT NOT NULL,
		state TEXT NOT NULL
	);
	`
	if _, err := conn.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %v", err)
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) SaveState(ctx context.Context, encoded string) error {
	q := `
	INSERT INTO saves (slot, snapshot_id, updated_at, state) VALUES ($1, $2, $3, $4)
	ON CONFLICT (slot) DO UPDATE SET snapshot_id = $2, updated_at = $3, state = $4;
	`
	_, err := r.conn.Exec(ctx, q, saveSlot, uuid.NewString(), time.Now().UnixMilli(), encoded)
	if err != nil {
		return fmt.Errorf("failed to upsert save slot: %v", err)
	}

	return nil
}

func (r *PostgresRepository) LoadState(ctx context.Context) (string, error) {
	q := `
	SELECT state FROM saves WHERE slot = $1;
	`
	var encoded string
	if err := r.conn.QueryRow(ctx, q, saveSlot).Scan(&encoded); err != nil {
		if err == pgx.ErrNoRows {
			return "", &ErrNotFound{}
		}
		return "", fmt.Errorf("failed to scan save slot: %v", err)
	}

	return encoded, nil
}

func (r *PostgresRepository) ClearState(ctx context.Context) error {
	q := `
	DELETE FROM saves WHERE slot = $1;
	`
	if _, err := r.conn.Exec(ctx, q, saveSlot); err != nil {
		return fmt.Errorf("failed to clear save slot: %v", err)
	}

	return nil
}

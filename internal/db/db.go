// Package db provides PostgreSQL persistence for optimization runs.
// The scoring engine itself is stateless; this layer only records
// inputs and artifacts so past runs can be reviewed.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the optimization_runs table if it does not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS optimization_runs (
			id UUID PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			job_description TEXT NOT NULL,
			role_keywords TEXT[] NOT NULL,
			default_score DOUBLE PRECISION NOT NULL,
			optimized_score DOUBLE PRECISION NOT NULL,
			resume JSONB NOT NULL,
			customized_resume JSONB NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create optimization_runs table: %w", err)
	}
	return nil
}

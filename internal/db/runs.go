package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OptimizationRun records one optimize call: the inputs, the extracted
// keywords, and the before/after artifacts.
type OptimizationRun struct {
	ID               uuid.UUID       `json:"id"`
	CreatedAt        time.Time       `json:"created_at"`
	JobDescription   string          `json:"job_description"`
	RoleKeywords     []string        `json:"role_keywords"`
	DefaultScore     float64         `json:"default_score"`
	OptimizedScore   float64         `json:"optimized_score"`
	Resume           json.RawMessage `json:"resume"`
	CustomizedResume json.RawMessage `json:"customized_resume"`
}

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("optimization run not found")

// SaveRun inserts a completed optimization run and returns its ID.
func (db *DB) SaveRun(ctx context.Context, run *OptimizationRun) (uuid.UUID, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO optimization_runs
		 (id, job_description, role_keywords, default_score, optimized_score, resume, customized_resume)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		run.ID, run.JobDescription, run.RoleKeywords,
		run.DefaultScore, run.OptimizedScore,
		run.Resume, run.CustomizedResume,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save run: %w", err)
	}
	return run.ID, nil
}

// GetRun retrieves one optimization run by ID.
func (db *DB) GetRun(ctx context.Context, id uuid.UUID) (*OptimizationRun, error) {
	var run OptimizationRun
	err := db.pool.QueryRow(ctx,
		`SELECT id, created_at, job_description, role_keywords,
		        default_score, optimized_score, resume, customized_resume
		 FROM optimization_runs WHERE id = $1`,
		id,
	).Scan(&run.ID, &run.CreatedAt, &run.JobDescription, &run.RoleKeywords,
		&run.DefaultScore, &run.OptimizedScore, &run.Resume, &run.CustomizedResume)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRuns returns the most recent runs, newest first, without the
// resume payloads.
func (db *DB) ListRuns(ctx context.Context, limit int) ([]OptimizationRun, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, created_at, job_description, role_keywords, default_score, optimized_score
		 FROM optimization_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []OptimizationRun
	for rows.Next() {
		var run OptimizationRun
		if err := rows.Scan(&run.ID, &run.CreatedAt, &run.JobDescription,
			&run.RoleKeywords, &run.DefaultScore, &run.OptimizedScore); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}
	return runs, nil
}

// DeleteRun removes a run by ID.
func (db *DB) DeleteRun(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM optimization_runs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRunNotFound
	}
	return nil
}

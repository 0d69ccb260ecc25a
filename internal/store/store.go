// Package store persists run telemetry — one row per validator/solve/
// swap invocation — to Postgres. It is run history, not player state:
// no puzzle solution and no per-user progress is ever written here.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/crossplay/waffle/internal/models"
	_ "github.com/lib/pq"
)

// Store wraps a Postgres connection. A nil *Store is valid and every
// method on it is a no-op, mirroring the teacher's own
// database-unavailable demo-mode fallback.
type Store struct {
	db *sql.DB
}

// New opens a Postgres connection and verifies it with a ping.
func New(postgresURL string) (*Store, error) {
	db, err := sql.Open("postgres", postgresURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// InitSchema creates the run-history table.
func (s *Store) InitSchema() error {
	if s == nil {
		return nil
	}
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS runs (
		id VARCHAR(36) PRIMARY KEY,
		kind VARCHAR(16) NOT NULL,
		puzzle_count INTEGER NOT NULL DEFAULT 0,
		diagnostic_count INTEGER NOT NULL DEFAULT 0,
		duration_ms BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`)
	if err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}
	return nil
}

// RecordRun inserts one run-history row. A nil *Store silently no-ops,
// the same graceful-degradation behaviour the teacher applies whenever
// its own database handle is nil.
func (s *Store) RecordRun(run *models.Run) error {
	if s == nil {
		return nil
	}
	_, err := s.db.Exec(`
		INSERT INTO runs (id, kind, puzzle_count, diagnostic_count, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, run.ID, run.Kind, run.PuzzleCount, run.DiagnosticCount, run.DurationMs, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// GetRun fetches one run by ID, or (nil, nil) if it doesn't exist.
func (s *Store) GetRun(id string) (*models.Run, error) {
	if s == nil {
		return nil, nil
	}
	var run models.Run
	err := s.db.QueryRow(`
		SELECT id, kind, puzzle_count, diagnostic_count, duration_ms, created_at
		FROM runs WHERE id = $1
	`, id).Scan(&run.ID, &run.Kind, &run.PuzzleCount, &run.DiagnosticCount, &run.DurationMs, &run.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// RecentRuns returns the most recent runs, newest first, capped at limit.
func (s *Store) RecentRuns(limit int) ([]models.Run, error) {
	if s == nil {
		return nil, nil
	}
	rows, err := s.db.Query(`
		SELECT id, kind, puzzle_count, diagnostic_count, duration_ms, created_at
		FROM runs ORDER BY created_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		var run models.Run
		if err := rows.Scan(&run.ID, &run.Kind, &run.PuzzleCount, &run.DiagnosticCount, &run.DurationMs, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

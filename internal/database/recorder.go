package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cybertec-postgresql/jsonlex/internal/results"
	"github.com/jackc/pgx/v5"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS jsonlex_runs (
    id          bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    search_path text        NOT NULL,
    version     text        NOT NULL,
    checked_at  timestamptz NOT NULL
);

CREATE TABLE IF NOT EXISTS jsonlex_files (
    run_id       bigint  NOT NULL REFERENCES jsonlex_runs (id) ON DELETE CASCADE,
    path         text    NOT NULL,
    file_type    text    NOT NULL,
    status       text    NOT NULL,
    bytes        integer NOT NULL,
    tokens       jsonb,
    scan_time_ns bigint  NOT NULL,
    error        text,
    line         integer,
    col          integer,
    PRIMARY KEY (run_id, path)
)`

var fileColumns = []string{
	"run_id", "path", "file_type", "status", "bytes", "tokens", "scan_time_ns", "error", "line", "col",
}

// Recorder persists check results in PostgreSQL
type Recorder struct {
	pool *Pool
}

// NewRecorder creates a recorder writing through pool
func NewRecorder(pool *Pool) *Recorder {
	return &Recorder{pool: pool}
}

// EnsureSchema creates the result tables if they do not exist
func (r *Recorder) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// RecordRun stores res as a new run and returns its id. The run and its
// files are written in one transaction.
func (r *Recorder) RecordRun(ctx context.Context, searchPath string, res *results.Results) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var runID int64
	err = tx.QueryRow(ctx,
		"INSERT INTO jsonlex_runs (search_path, version, checked_at) VALUES ($1, $2, $3) RETURNING id",
		searchPath, res.Version, res.Timestamp).Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	rows := make([][]any, 0, len(res.Files))
	for _, path := range res.GetFiles() {
		f := res.Files[path]

		var tokens any
		if len(f.Tokens) > 0 {
			data, err := json.Marshal(f.Tokens)
			if err != nil {
				return 0, fmt.Errorf("failed to encode token counts for %s: %w", path, err)
			}
			tokens = string(data)
		}

		rows = append(rows, []any{
			runID, path, f.Type, f.Status, f.Bytes, tokens, f.ScanTime.Nanoseconds(),
			nullText(f.Error), nullInt(f.Line), nullInt(f.Column),
		})
	}

	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"jsonlex_files"}, fileColumns, pgx.CopyFromRows(rows)); err != nil {
		return 0, fmt.Errorf("failed to copy file results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}

	return runID, nil
}

// LatestRunID returns the id of the most recent run
func (r *Recorder) LatestRunID(ctx context.Context) (int64, error) {
	var runID int64
	err := r.pool.QueryRow(ctx, "SELECT id FROM jsonlex_runs ORDER BY checked_at DESC, id DESC LIMIT 1").Scan(&runID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("no runs recorded yet")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query latest run: %w", err)
	}
	return runID, nil
}

// LoadRun reads a recorded run back into Results
func (r *Recorder) LoadRun(ctx context.Context, runID int64) (*results.Results, error) {
	res := &results.Results{Files: make(map[string]results.FileResult)}

	err := r.pool.QueryRow(ctx, "SELECT version, checked_at FROM jsonlex_runs WHERE id = $1", runID).
		Scan(&res.Version, &res.Timestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query run %d: %w", runID, err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT path, file_type, status, bytes, tokens, scan_time_ns,
		       coalesce(error, ''), coalesce(line, 0), coalesce(col, 0)
		FROM jsonlex_files
		WHERE run_id = $1`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query files of run %d: %w", runID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			path     string
			f        results.FileResult
			tokens   []byte
			scanTime int64
		)
		if err := rows.Scan(&path, &f.Type, &f.Status, &f.Bytes, &tokens, &scanTime,
			&f.Error, &f.Line, &f.Column); err != nil {
			return nil, fmt.Errorf("failed to scan file row: %w", err)
		}
		if tokens != nil {
			if err := json.Unmarshal(tokens, &f.Tokens); err != nil {
				return nil, fmt.Errorf("failed to decode token counts for %s: %w", path, err)
			}
		}
		f.ScanTime = time.Duration(scanTime)
		res.Files[path] = f
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read files of run %d: %w", runID, err)
	}

	return res, nil
}

func nullText(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt(n int) any {
	if n == 0 {
		return nil
	}
	return int32(n)
}

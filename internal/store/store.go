// Package store persists analysis results in a per-project sqlite cache.
//
// The cache is advisory: commands that write to it treat failures as
// warnings, and explain falls back to fresh analysis when it cannot answer
// from the cache.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/glint-tools/cli/internal/check"
	"github.com/glint-tools/cli/internal/log"
)

// FileName is the cache location relative to the working directory.
const FileName = ".glint/results.db"

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	directory  TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS issues (
	run_id      TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	check_name  TEXT NOT NULL,
	category    TEXT NOT NULL,
	priority    INTEGER NOT NULL,
	message     TEXT NOT NULL,
	filename    TEXT NOT NULL,
	line        INTEGER NOT NULL,
	col         INTEGER NOT NULL,
	trigger     TEXT NOT NULL,
	exit_status INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_issues_run ON issues(run_id);
`

// Store wraps the sqlite connection.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the results cache under dir.
func Open(dir string) (*Store, error) {
	path := filepath.Join(dir, FileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open results cache: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open results cache: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("prepare results cache: %w", err)
	}
	log.Debug("store: results cache ready at %s", path)
	return &Store{db: db}, nil
}

// Close closes the connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun records a run and its issues atomically.
func (s *Store) SaveRun(runID, dir string, issues []check.Issue) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`INSERT INTO runs (id, directory, created_at) VALUES (?, ?, ?)`,
		runID, dir, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return err
	}
	insert, err := tx.Prepare(`INSERT INTO issues
		(run_id, check_name, category, priority, message, filename, line, col, trigger, exit_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = insert.Close() }()
	for _, issue := range issues {
		if _, err := insert.Exec(
			runID, issue.CheckName, string(issue.Category), issue.Priority,
			issue.Message, issue.Filename, issue.Line, issue.Column,
			issue.Trigger, issue.ExitStatus,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LatestIssues returns the issues of the most recent run for dir. ok is
// false when no run has been recorded.
func (s *Store) LatestIssues(dir string) ([]check.Issue, bool, error) {
	var runID string
	err := s.db.QueryRow(
		`SELECT id FROM runs WHERE directory = ? ORDER BY created_at DESC LIMIT 1`,
		dir,
	).Scan(&runID)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	rows, err := s.db.Query(`SELECT check_name, category, priority, message,
		filename, line, col, trigger, exit_status
		FROM issues WHERE run_id = ? ORDER BY filename, line, col`, runID)
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = rows.Close() }()

	var issues []check.Issue
	for rows.Next() {
		var issue check.Issue
		var category string
		if err := rows.Scan(&issue.CheckName, &category, &issue.Priority,
			&issue.Message, &issue.Filename, &issue.Line, &issue.Column,
			&issue.Trigger, &issue.ExitStatus); err != nil {
			return nil, false, err
		}
		issue.Category = check.Category(category)
		issues = append(issues, issue)
	}
	return issues, true, rows.Err()
}

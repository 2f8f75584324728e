// Package store persists the feeding log and settings in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	// Import modernc.org/sqlite as a blank import to register the driver
	_ "modernc.org/sqlite"

	"github.com/cjjknight/baby-feeding/internal/logger"
	"github.com/cjjknight/baby-feeding/internal/models"
)

// timeFormat preserves sub-second precision and offset so a saved log loads
// back equal to what was written.
const timeFormat = time.RFC3339Nano

// Store wraps the SQL database connection with application-specific methods.
type Store struct {
	*sql.DB
	path string
}

// New creates a new database connection and initializes the schema.
func New(path string) (*Store, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlDB.PingContext(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Store{
		DB:   sqlDB,
		path: path,
	}

	if err := s.configure(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	if err := s.createSchema(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// configure sets up database pragmas.
func (s *Store) configure() error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}

	for _, pragma := range pragmas {
		if _, err := s.ExecContext(context.Background(), pragma); err != nil {
			return fmt.Errorf("failed to execute %s: %w", pragma, err)
		}
	}

	return nil
}

func (s *Store) createSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS feedings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		fed_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_feedings_fed_at ON feedings(fed_at);

	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.ExecContext(context.Background(), query)
	return err
}

// LoadFeedings returns the persisted feeding log sorted ascending. A missing
// or undecodable log degrades to an empty one: rows that fail to parse are
// skipped with a warning.
func (s *Store) LoadFeedings() (models.FeedingLog, error) {
	rows, err := s.QueryContext(context.Background(),
		"SELECT fed_at FROM feedings ORDER BY fed_at ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query feedings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var log models.FeedingLog
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan feeding: %w", err)
		}
		t, err := time.Parse(timeFormat, raw)
		if err != nil {
			logger.Warn("skipping undecodable feeding timestamp", "value", raw, "error", err)
			continue
		}
		log = append(log, t)
	}

	return log, rows.Err()
}

// SaveFeedings replaces the stored log with the given one inside a single
// transaction, last-write-wins on the whole list.
func (s *Store) SaveFeedings(log models.FeedingLog) error {
	ctx := context.Background()
	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM feedings"); err != nil {
		return fmt.Errorf("failed to clear feedings: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO feedings (fed_at) VALUES (?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, t := range log {
		if _, err := stmt.ExecContext(ctx, t.Format(timeFormat)); err != nil {
			return fmt.Errorf("failed to insert feeding: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit feedings: %w", err)
	}
	return nil
}

// LoadInterval returns the persisted feeding interval in hours. The second
// return value is false when no interval has been stored.
func (s *Store) LoadInterval() (int, bool) {
	var raw string
	err := s.QueryRowContext(context.Background(),
		"SELECT value FROM settings WHERE key = 'feeding_interval'").Scan(&raw)
	if err == sql.ErrNoRows {
		return 0, false
	}
	if err != nil {
		logger.Warn("failed to load feeding interval", "error", err)
		return 0, false
	}
	hours, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warn("undecodable feeding interval", "value", raw, "error", err)
		return 0, false
	}
	return hours, true
}

// SaveInterval persists the feeding interval in hours.
func (s *Store) SaveInterval(hours int) error {
	_, err := s.ExecContext(context.Background(),
		`INSERT INTO settings (key, value) VALUES ('feeding_interval', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		strconv.Itoa(hours))
	if err != nil {
		return fmt.Errorf("failed to save feeding interval: %w", err)
	}
	return nil
}

// Close closes the database connection gracefully.
func (s *Store) Close() error {
	// Checkpoint WAL before closing
	_, _ = s.ExecContext(context.Background(), "PRAGMA wal_checkpoint(TRUNCATE)")
	return s.DB.Close()
}

// Vacuum performs database maintenance to reclaim space.
func (s *Store) Vacuum() error {
	_, err := s.ExecContext(context.Background(), "VACUUM")
	return err
}

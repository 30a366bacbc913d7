package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/glebarez/sqlite"
)

// DB wraps the SQLite database connection
type DB struct {
	*sql.DB
}

// ActivationRecord is one Enter press on a layout element
type ActivationRecord struct {
	ID        int64
	Timestamp time.Time
	Path      string
	Kind      string
	Label     string
	Parameter string
	Layout    string
}

// PathCount is the number of activations recorded for one element path
type PathCount struct {
	Path  string
	Count int
	Last  time.Time
}

// Open opens the SQLite database and creates tables if needed
func Open(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	db := &DB{DB: sqlDB}

	if err := db.createTables(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// createTables creates the necessary database tables
func (db *DB) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS activations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp INTEGER NOT NULL,
		path TEXT NOT NULL,
		kind TEXT NOT NULL,
		label TEXT NOT NULL,
		parameter TEXT NOT NULL DEFAULT '',
		layout TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_activations_timestamp ON activations(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_activations_path ON activations(path);
	`

	_, err := db.Exec(query)
	return err
}

// RecordActivation stores r and returns its row id. A zero timestamp is
// replaced with the current time.
func (db *DB) RecordActivation(r ActivationRecord) (int64, error) {
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now()
	}

	result, err := db.Exec(
		`INSERT INTO activations (timestamp, path, kind, label, parameter, layout) VALUES (?, ?, ?, ?, ?, ?)`,
		r.Timestamp.UnixMilli(),
		r.Path,
		r.Kind,
		r.Label,
		r.Parameter,
		r.Layout,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record activation: %w", err)
	}
	return result.LastInsertId()
}

// GetRecentActivations returns up to limit records, newest first
func (db *DB) GetRecentActivations(limit int) ([]ActivationRecord, error) {
	query := `
	SELECT id, timestamp, path, kind, label, parameter, layout
	FROM activations
	ORDER BY timestamp DESC, id DESC
	LIMIT ?
	`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ActivationRecord
	for rows.Next() {
		var r ActivationRecord
		var ts int64
		if err := rows.Scan(&r.ID, &ts, &r.Path, &r.Kind, &r.Label, &r.Parameter, &r.Layout); err != nil {
			return nil, err
		}
		r.Timestamp = time.UnixMilli(ts)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// CountByPath returns the most activated element paths, busiest first
func (db *DB) CountByPath(limit int) ([]PathCount, error) {
	query := `
	SELECT path, COUNT(*) AS n, MAX(timestamp)
	FROM activations
	GROUP BY path
	ORDER BY n DESC, path ASC
	LIMIT ?
	`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []PathCount
	for rows.Next() {
		var c PathCount
		var last int64
		if err := rows.Scan(&c.Path, &c.Count, &last); err != nil {
			return nil, err
		}
		c.Last = time.UnixMilli(last)
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// DeleteBefore removes records older than cutoff and returns how many went
func (db *DB) DeleteBefore(cutoff time.Time) (int64, error) {
	result, err := db.Exec("DELETE FROM activations WHERE timestamp < ?", cutoff.UnixMilli())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

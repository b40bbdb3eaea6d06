// Author: Toluwalase Mebaanne
// Package history provides the SQLite-backed dispatch history log.
//
// WHY SQLite:
// LinkDrop's history is append-mostly, queried newest-first, and lives in a
// single per-user file alongside the settings record. An embedded database
// needs no server, makes backups a file copy, and survives the process
// exiting milliseconds after the insert - which is exactly the lifetime of
// a dispatch invocation.
//
// WHY history is best-effort:
// The log exists for the user's benefit after the fact. A broken database
// must never block or fail a dispatch, so callers record outcomes with a
// logged-and-ignored error, mirroring the availability-over-correctness
// stance of the settings load path.

package history

import (
	"database/sql"
	"fmt"
	"time"

	// go-sqlite3 registers itself as a database/sql driver via init();
	// database/sql uses it behind the scenes on Open("sqlite3", ...).
	_ "github.com/mattn/go-sqlite3"

	"github.com/tmair/linkdrop/shared/models"
)

// Storage wraps the SQLite connection holding the dispatch history.
type Storage struct {
	db *sql.DB
}

// NewStorage opens (or creates) the history database and ensures the schema
// exists.
//
// WHY WAL mode via the connection string: a dispatch invocation and an open
// configuration surface may touch the database at the same moment;
// Write-Ahead Logging lets the read proceed while the insert commits.
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// sql.Open only validates the driver name; Ping forces a real
	// connection attempt so a bad path fails here, not on first insert.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	s := &Storage{db: db}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	return s, nil
}

// createTables sets up the dispatch log schema.
// WHY IF NOT EXISTS: opening the database is idempotent across invocations -
// every dispatch and every configuration-surface launch runs through here.
func (s *Storage) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS dispatches (
		record_id   TEXT PRIMARY KEY,
		url         TEXT NOT NULL,
		action      TEXT NOT NULL,
		command     TEXT NOT NULL DEFAULT '',
		outcome     TEXT NOT NULL,
		created_utc DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_dispatches_created ON dispatches(created_utc);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create dispatches table: %w", err)
	}

	return nil
}

// Insert appends one dispatch record to the log.
// WHY INSERT OR IGNORE: record IDs are unique per invocation, so a replayed
// insert (e.g., a caller retrying after a timeout) is silently skipped
// instead of erroring.
func (s *Storage) Insert(rec *models.Record) error {
	query := `
	INSERT OR IGNORE INTO dispatches (record_id, url, action, command, outcome, created_utc)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		rec.RecordID,
		rec.URL,
		rec.Action,
		rec.Command,
		rec.Outcome,
		rec.CreatedUTC.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert dispatch record: %w", err)
	}

	return nil
}

// Recent returns the most recent dispatch records, newest first.
func (s *Storage) Recent(limit int) ([]models.Record, error) {
	query := `
	SELECT record_id, url, action, command, outcome, created_utc
	FROM dispatches
	ORDER BY created_utc DESC
	LIMIT ?
	`

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query dispatch records: %w", err)
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		var rec models.Record
		var ts string

		if err := rows.Scan(
			&rec.RecordID,
			&rec.URL,
			&rec.Action,
			&rec.Command,
			&rec.Outcome,
			&ts,
		); err != nil {
			return nil, fmt.Errorf("failed to scan dispatch row: %w", err)
		}

		// SQLite stores the timestamp as RFC3339 text; parse it back so
		// callers get a real time.Time.
		rec.CreatedUTC, err = time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("failed to parse dispatch timestamp: %w", err)
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dispatch rows: %w", err)
	}

	return records, nil
}

// Close shuts down the database connection, checkpointing the WAL.
func (s *Storage) Close() error {
	return s.db.Close()
}

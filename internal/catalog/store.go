// Package catalog persists a record of completed conversions so a
// batch run can skip inputs it has already processed.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no conversion exists for a source path.
var ErrNotFound = errors.New("catalog: conversion not found")

// Record describes one completed conversion.
type Record struct {
	SourcePath      string
	OutputPath      string
	InputSize       int64
	FileVersion     int
	LicenseeVersion int
	FolderName      string
	ChunkCount      int
	InputDigest     []byte
	OutputDigest    []byte
	ConvertedAt     time.Time
}

// Store wraps the SQLite conversion database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the catalog database at the given path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("catalog: db path required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.applyPragmas(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := store.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) applyPragmas(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, "PRAGMA synchronous=FULL"); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		return err
	}
	return nil
}

func (s *Store) migrate(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	applied_at TEXT NOT NULL
)`); err != nil {
		return err
	}

	var version int
	if err = tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version); err != nil {
		return err
	}
	if version < 1 {
		if err = applyV1(ctx, tx); err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, "INSERT INTO schema_migrations(version, applied_at) VALUES(1, ?)", time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func applyV1(ctx context.Context, tx *sql.Tx) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			source_path TEXT PRIMARY KEY,
			output_path TEXT NOT NULL,
			input_size INTEGER NOT NULL,
			file_version INTEGER NOT NULL,
			licensee_version INTEGER NOT NULL,
			folder_name TEXT,
			chunk_count INTEGER NOT NULL,
			input_digest BLOB NOT NULL,
			output_digest BLOB NOT NULL,
			converted_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS conversions_converted_at_idx ON conversions(converted_at)`,
	}
	for _, stmt := range ddl {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Put inserts or replaces the conversion record for its source path.
func (s *Store) Put(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx, `
INSERT OR REPLACE INTO conversions
	(source_path, output_path, input_size, file_version, licensee_version,
	 folder_name, chunk_count, input_digest, output_digest, converted_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SourcePath, rec.OutputPath, rec.InputSize, rec.FileVersion,
		rec.LicenseeVersion, rec.FolderName, rec.ChunkCount,
		rec.InputDigest, rec.OutputDigest,
		rec.ConvertedAt.UTC().Format(time.RFC3339Nano))
	return err
}

// BySource returns the conversion record for a source path, or
// ErrNotFound.
func (s *Store) BySource(ctx context.Context, sourcePath string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT source_path, output_path, input_size, file_version, licensee_version,
       folder_name, chunk_count, input_digest, output_digest, converted_at
FROM conversions WHERE source_path = ?`, sourcePath)
	var rec Record
	var convertedAt string
	err := row.Scan(&rec.SourcePath, &rec.OutputPath, &rec.InputSize,
		&rec.FileVersion, &rec.LicenseeVersion, &rec.FolderName,
		&rec.ChunkCount, &rec.InputDigest, &rec.OutputDigest, &convertedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}
	if rec.ConvertedAt, err = time.Parse(time.RFC3339Nano, convertedAt); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Count returns the number of recorded conversions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM conversions").Scan(&n)
	return n, err
}

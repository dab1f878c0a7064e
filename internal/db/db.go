// Package db opens the embedded contributions database and materializes its schema.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

// Driver names as registered by the SQL driver packages.
const (
	DriverMattn   = "sqlite3"
	DriverModernc = "sqlite"
)

// Open opens (creating if needed) the database at path with the given driver,
// applies the schema and seeds the reference tables when they are empty.
// The caller owns the returned handle and must Close it.
func Open(ctx context.Context, path, driver string) (*sql.DB, error) {
	if driver == "" {
		driver = DriverMattn
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn, err := buildDSN(path, driver)
	if err != nil {
		return nil, err
	}

	database, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection: the CLI is single-threaded and per-connection pragmas stay in effect.
	database.SetMaxOpenConns(1)

	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}

	if err := InitSchema(ctx, database); err != nil {
		database.Close()
		return nil, err
	}

	return database, nil
}

// InitSchema creates missing tables and seeds agent rules and prompts.
// Existing data is never modified.
func InitSchema(ctx context.Context, database *sql.DB) error {
	if _, err := database.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := database.ExecContext(ctx, GetSchemaSQL()); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	if err := SeedDefaults(ctx, database); err != nil {
		return fmt.Errorf("failed to seed defaults: %w", err)
	}
	return nil
}

func buildDSN(path, driver string) (string, error) {
	switch driver {
	case DriverMattn:
		return "file:" + path + "?_foreign_keys=on&_busy_timeout=5000", nil
	case DriverModernc:
		return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

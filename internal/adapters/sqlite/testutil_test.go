// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() so tests run against the
// authoritative schema. Do not hardcode CREATE TABLE statements in test files.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/contrack/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// A single connection keeps every statement on the same in-memory database.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedRepository inserts a test repository and returns its ID.
func seedRepository(t *testing.T, db *sql.DB, id, url string) string {
	t.Helper()
	if id == "" {
		id = "REPO-001"
	}
	if url == "" {
		url = "https://github.com/acme/widgets"
	}
	_, err := db.Exec("INSERT INTO repositories (id, url, organization, name) VALUES (?, ?, 'acme', 'widgets')", id, url)
	if err != nil {
		t.Fatalf("failed to seed repository: %v", err)
	}
	return id
}

// at returns a fixed UTC timestamp offset by the given number of minutes.
func at(minutes int) time.Time {
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(minutes) * time.Minute)
}

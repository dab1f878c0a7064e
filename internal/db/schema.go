package db

// SchemaSQL is the complete contrack schema.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Open applies it
// on every start and all tests load it through GetSchemaSQL(), so repository
// code that references a missing column fails in tests with "no such column".
//
// Every statement is CREATE ... IF NOT EXISTS. There is no migration engine:
// new columns need a new table or a manual rebuild of the database file.
const SchemaSQL = `
-- Repositories (tracked source-code projects, keyed by URL)
CREATE TABLE IF NOT EXISTS repositories (
	id TEXT PRIMARY KEY,
	url TEXT NOT NULL UNIQUE,
	organization TEXT NOT NULL,
	name TEXT NOT NULL,
	description TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Contributions (documented units of work against a repository)
CREATE TABLE IF NOT EXISTS contributions (
	id TEXT PRIMARY KEY,
	repository_id TEXT NOT NULL,
	name TEXT NOT NULL,
	overview TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	key_commits TEXT NOT NULL DEFAULT '[]',
	related_commits TEXT NOT NULL DEFAULT '[]',
	category TEXT,
	priority INTEGER,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (repository_id) REFERENCES repositories(id),
	UNIQUE(repository_id, name)
);

-- Commits (resolved metadata for hashes referenced by contributions)
CREATE TABLE IF NOT EXISTS commits (
	repository_id TEXT NOT NULL,
	commit_hash TEXT NOT NULL,
	author_name TEXT NOT NULL,
	author_email TEXT NOT NULL DEFAULT '',
	committed_at DATETIME NOT NULL,
	summary TEXT NOT NULL DEFAULT '',
	message TEXT NOT NULL DEFAULT '',
	files_changed TEXT NOT NULL DEFAULT '[]',
	lines_added INTEGER NOT NULL DEFAULT 0,
	lines_deleted INTEGER NOT NULL DEFAULT 0,
	synced_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (repository_id, commit_hash),
	FOREIGN KEY (repository_id) REFERENCES repositories(id)
);

-- Agent rules (instructions for automated callers, seed-loaded)
CREATE TABLE IF NOT EXISTS agent_rules (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	instruction TEXT NOT NULL,
	priority INTEGER NOT NULL DEFAULT 0,
	category TEXT,
	examples TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Prompts (reusable prompt templates, seed-loaded)
CREATE TABLE IF NOT EXISTS prompts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	prompt_text TEXT NOT NULL,
	description TEXT,
	category TEXT,
	variables TEXT NOT NULL DEFAULT '[]',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_contributions_repository ON contributions(repository_id);
CREATE INDEX IF NOT EXISTS idx_commits_repository ON commits(repository_id);
`

// GetSchemaSQL returns the authoritative schema.
func GetSchemaSQL() string {
	return SchemaSQL
}

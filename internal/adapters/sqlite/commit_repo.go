package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/contrack/internal/core/commit"
	"github.com/example/contrack/internal/ports/secondary"
)

// CommitRepository implements secondary.CommitRepository with SQLite.
type CommitRepository struct {
	db *sql.DB
}

// NewCommitRepository creates a new SQLite commit repository.
func NewCommitRepository(db *sql.DB) *CommitRepository {
	return &CommitRepository{db: db}
}

const commitColumns = "repository_id, commit_hash, author_name, author_email, committed_at, summary, message, files_changed, lines_added, lines_deleted, synced_at"

// Upsert inserts a commit or refreshes the stored copy.
func (r *CommitRepository) Upsert(ctx context.Context, c *secondary.CommitRecord) error {
	files, err := encodeList(c.FilesChanged)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO commits ("+commitColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(repository_id, commit_hash) DO UPDATE SET
			author_name = excluded.author_name,
			author_email = excluded.author_email,
			committed_at = excluded.committed_at,
			summary = excluded.summary,
			message = excluded.message,
			files_changed = excluded.files_changed,
			lines_added = excluded.lines_added,
			lines_deleted = excluded.lines_deleted,
			synced_at = excluded.synced_at`,
		c.RepositoryID, commit.Normalize(c.Hash), c.AuthorName, c.AuthorEmail, formatTime(c.CommittedAt),
		c.Summary, c.Message, files, c.LinesAdded, c.LinesDeleted, formatTime(c.SyncedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert commit: %w", err)
	}

	return nil
}

// Resolve looks up a possibly abbreviated hash within a repository.
func (r *CommitRepository) Resolve(ctx context.Context, repositoryID, ref string) (*secondary.CommitRecord, error) {
	ref = commit.Normalize(ref)
	if ref == "" {
		return nil, nil
	}

	row := r.db.QueryRowContext(ctx,
		"SELECT "+commitColumns+" FROM commits WHERE repository_id = ? AND commit_hash = ?",
		repositoryID, ref,
	)
	record, err := scanCommit(row)
	if err == nil {
		return record, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get commit: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+commitColumns+" FROM commits WHERE repository_id = ? AND substr(commit_hash, 1, ?) = ? LIMIT 2",
		repositoryID, len(ref), ref,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve commit prefix: %w", err)
	}
	defer rows.Close()

	var matches []*secondary.CommitRecord
	for rows.Next() {
		record, err := scanCommit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan commit: %w", err)
		}
		matches = append(matches, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to resolve commit prefix: %w", err)
	}

	if len(matches) != 1 {
		return nil, nil // unknown or ambiguous
	}
	return matches[0], nil
}

// List retrieves every stored commit of a repository, newest first.
func (r *CommitRepository) List(ctx context.Context, repositoryID string) ([]*secondary.CommitRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+commitColumns+" FROM commits WHERE repository_id = ? ORDER BY committed_at DESC, commit_hash ASC",
		repositoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits: %w", err)
	}
	defer rows.Close()

	var commits []*secondary.CommitRecord
	for rows.Next() {
		record, err := scanCommit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan commit: %w", err)
		}
		commits = append(commits, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list commits: %w", err)
	}

	return commits, nil
}

func scanCommit(row rowScanner) (*secondary.CommitRecord, error) {
	var committedAt, syncedAt, files string

	record := &secondary.CommitRecord{}
	err := row.Scan(&record.RepositoryID, &record.Hash, &record.AuthorName, &record.AuthorEmail, &committedAt,
		&record.Summary, &record.Message, &files, &record.LinesAdded, &record.LinesDeleted, &syncedAt)
	if err != nil {
		return nil, err
	}

	if record.FilesChanged, err = decodeList(files); err != nil {
		return nil, fmt.Errorf("commit %s files: %w", record.Hash, err)
	}
	record.CommittedAt = parseTime(committedAt)
	record.SyncedAt = parseTime(syncedAt)
	return record, nil
}

var _ secondary.CommitRepository = (*CommitRepository)(nil)

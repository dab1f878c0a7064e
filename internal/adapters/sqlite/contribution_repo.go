package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/contrack/internal/core/contribution"
	"github.com/example/contrack/internal/ports/secondary"
)

// ContributionRepository implements secondary.ContributionRepository with SQLite.
// Commit lists are stored as JSON arrays; nothing outside this file sees the encoding.
type ContributionRepository struct {
	db *sql.DB
}

// NewContributionRepository creates a new SQLite contribution repository.
func NewContributionRepository(db *sql.DB) *ContributionRepository {
	return &ContributionRepository{db: db}
}

const contributionColumns = "id, repository_id, name, overview, description, key_commits, related_commits, category, priority, created_at, updated_at"

// Create persists a new contribution.
func (r *ContributionRepository) Create(ctx context.Context, c *secondary.ContributionRecord) error {
	keyCommits, err := encodeList(c.KeyCommits)
	if err != nil {
		return err
	}
	relatedCommits, err := encodeList(c.RelatedCommits)
	if err != nil {
		return err
	}

	createdAt := formatTime(c.CreatedAt)
	updatedAt := createdAt
	if !c.UpdatedAt.IsZero() {
		updatedAt = formatTime(c.UpdatedAt)
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO contributions ("+contributionColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		c.ID, c.RepositoryID, c.Name, c.Overview, c.Description, keyCommits, relatedCommits,
		nullString(c.Category), nullInt(c.Priority), createdAt, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create contribution: %w", err)
	}

	return nil
}

// GetByName retrieves a contribution by repository and name.
func (r *ContributionRepository) GetByName(ctx context.Context, repositoryID, name string) (*secondary.ContributionRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+contributionColumns+" FROM contributions WHERE repository_id = ? AND name = ?",
		repositoryID, name,
	)

	record, err := scanContribution(row)
	if err == sql.ErrNoRows {
		return nil, nil // Return nil, nil for "not found" to distinguish from errors
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contribution: %w", err)
	}
	return record, nil
}

// List retrieves a repository's contributions, highest priority first.
// Unset priorities sort last; ties keep insertion order.
func (r *ContributionRepository) List(ctx context.Context, repositoryID string) ([]*secondary.ContributionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+contributionColumns+` FROM contributions WHERE repository_id = ?
		ORDER BY priority IS NULL, priority DESC, created_at ASC, rowid ASC`,
		repositoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	defer rows.Close()

	var contributions []*secondary.ContributionRecord
	for rows.Next() {
		record, err := scanContribution(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contribution: %w", err)
		}
		contributions = append(contributions, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}

	return contributions, nil
}

// Update overwrites the mutable fields of an existing contribution.
func (r *ContributionRepository) Update(ctx context.Context, c *secondary.ContributionRecord) error {
	keyCommits, err := encodeList(c.KeyCommits)
	if err != nil {
		return err
	}
	relatedCommits, err := encodeList(c.RelatedCommits)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE contributions SET overview = ?, description = ?, key_commits = ?, related_commits = ?,
		category = ?, priority = ?, updated_at = ? WHERE id = ?`,
		c.Overview, c.Description, keyCommits, relatedCommits,
		nullString(c.Category), nullInt(c.Priority), formatTime(c.UpdatedAt), c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update contribution: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("contribution %s not found", c.ID)
	}

	return nil
}

// GetNextID returns the next available contribution ID.
func (r *ContributionRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 9) AS INTEGER)), 0) FROM contributions",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next contribution ID: %w", err)
	}

	return contribution.GenerateContributionID(maxID), nil
}

func scanContribution(row rowScanner) (*secondary.ContributionRecord, error) {
	var (
		keyCommits, relatedCommits string
		category                   sql.NullString
		priority                   sql.NullInt64
		createdAt, updatedAt       string
	)

	record := &secondary.ContributionRecord{}
	err := row.Scan(&record.ID, &record.RepositoryID, &record.Name, &record.Overview, &record.Description,
		&keyCommits, &relatedCommits, &category, &priority, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if record.KeyCommits, err = decodeList(keyCommits); err != nil {
		return nil, fmt.Errorf("contribution %s key commits: %w", record.ID, err)
	}
	if record.RelatedCommits, err = decodeList(relatedCommits); err != nil {
		return nil, fmt.Errorf("contribution %s related commits: %w", record.ID, err)
	}

	record.Category = category.String
	record.Priority = int(priority.Int64)
	record.CreatedAt = parseTime(createdAt)
	record.UpdatedAt = parseTime(updatedAt)
	return record, nil
}

var _ secondary.ContributionRepository = (*ContributionRepository)(nil)

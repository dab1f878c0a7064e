// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/contrack/internal/core/repository"
	"github.com/example/contrack/internal/ports/secondary"
)

// RepositoryRepository implements secondary.RepositoryRepository with SQLite.
type RepositoryRepository struct {
	db *sql.DB
}

// NewRepositoryRepository creates a new SQLite repository registry.
func NewRepositoryRepository(db *sql.DB) *RepositoryRepository {
	return &RepositoryRepository{db: db}
}

const repositoryColumns = "id, url, organization, name, description, created_at, updated_at"

// Create persists a new repository.
func (r *RepositoryRepository) Create(ctx context.Context, repo *secondary.RepositoryRecord) error {
	createdAt := formatTime(repo.CreatedAt)
	updatedAt := createdAt
	if !repo.UpdatedAt.IsZero() {
		updatedAt = formatTime(repo.UpdatedAt)
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO repositories ("+repositoryColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		repo.ID, repo.URL, repo.Organization, repo.Name, nullString(repo.Description), createdAt, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}

	return nil
}

// GetByID retrieves a repository by its ID.
func (r *RepositoryRepository) GetByID(ctx context.Context, id string) (*secondary.RepositoryRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+repositoryColumns+" FROM repositories WHERE id = ?", id)

	record, err := scanRepository(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("repository %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get repository: %w", err)
	}
	return record, nil
}

// GetByURL retrieves a repository by its unique URL.
func (r *RepositoryRepository) GetByURL(ctx context.Context, url string) (*secondary.RepositoryRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+repositoryColumns+" FROM repositories WHERE url = ?", url)

	record, err := scanRepository(row)
	if err == sql.ErrNoRows {
		return nil, nil // Return nil, nil for "not found" to distinguish from errors
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get repository by URL: %w", err)
	}
	return record, nil
}

// List retrieves all repositories ordered by name, then URL.
func (r *RepositoryRepository) List(ctx context.Context) ([]*secondary.RepositoryRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+repositoryColumns+" FROM repositories ORDER BY name ASC, url ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}
	defer rows.Close()

	var repos []*secondary.RepositoryRecord
	for rows.Next() {
		record, err := scanRepository(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan repository: %w", err)
		}
		repos = append(repos, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}

	return repos, nil
}

// Update overwrites organization, name and description of an existing repository.
func (r *RepositoryRepository) Update(ctx context.Context, repo *secondary.RepositoryRecord) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE repositories SET organization = ?, name = ?, description = ?, updated_at = ? WHERE id = ?",
		repo.Organization, repo.Name, nullString(repo.Description), formatTime(repo.UpdatedAt), repo.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update repository: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("repository %s not found", repo.ID)
	}

	return nil
}

// GetNextID returns the next available repository ID.
func (r *RepositoryRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 6) AS INTEGER)), 0) FROM repositories",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next repository ID: %w", err)
	}

	return repository.GenerateRepositoryID(maxID), nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRepository(row rowScanner) (*secondary.RepositoryRecord, error) {
	var (
		description          sql.NullString
		createdAt, updatedAt string
	)

	record := &secondary.RepositoryRecord{}
	if err := row.Scan(&record.ID, &record.URL, &record.Organization, &record.Name, &description, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	record.Description = description.String
	record.CreatedAt = parseTime(createdAt)
	record.UpdatedAt = parseTime(updatedAt)
	return record, nil
}

var _ secondary.RepositoryRepository = (*RepositoryRepository)(nil)

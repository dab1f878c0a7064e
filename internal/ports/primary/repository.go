package primary

import (
	"context"
	"time"
)

// RepositoryService defines the primary port for the repository registry.
type RepositoryService interface {
	// InitializeRepository registers a new repository. Fails if the URL exists.
	InitializeRepository(ctx context.Context, req InitializeRepositoryRequest) (*InitializeRepositoryResponse, error)

	// ResolveRepository looks up a registered repository by URL.
	ResolveRepository(ctx context.Context, url string) (*Repository, error)

	// ListRepositories lists every registered repository ordered by name.
	ListRepositories(ctx context.Context) ([]*Repository, error)

	// UpsertRepository creates the repository or refreshes its metadata.
	// Only the registry file import uses it.
	UpsertRepository(ctx context.Context, req InitializeRepositoryRequest) (*Repository, bool, error)
}

// InitializeRepositoryRequest contains parameters for registering a repository.
type InitializeRepositoryRequest struct {
	URL          string
	Organization string
	Name         string
	Description  string
}

// InitializeRepositoryResponse contains the result of registering a repository.
type InitializeRepositoryResponse struct {
	RepositoryID string
	Repository   *Repository
}

// Repository represents a repository entity at the port boundary.
type Repository struct {
	ID           string
	URL          string
	Organization string
	Name         string
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

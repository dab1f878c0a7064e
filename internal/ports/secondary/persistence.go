// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"time"
)

// RepositoryRepository defines the secondary port for repository persistence.
type RepositoryRepository interface {
	// Create persists a new repository.
	Create(ctx context.Context, repo *RepositoryRecord) error

	// GetByID retrieves a repository by its ID.
	GetByID(ctx context.Context, id string) (*RepositoryRecord, error)

	// GetByURL retrieves a repository by its unique URL.
	// Returns nil, nil when no repository has that URL.
	GetByURL(ctx context.Context, url string) (*RepositoryRecord, error)

	// List retrieves all repositories ordered by name, then URL.
	List(ctx context.Context) ([]*RepositoryRecord, error)

	// Update overwrites organization, name and description of an existing repository.
	Update(ctx context.Context, repo *RepositoryRecord) error

	// GetNextID returns the next available repository ID.
	GetNextID(ctx context.Context) (string, error)
}

// RepositoryRecord represents a repository as stored in persistence.
type RepositoryRecord struct {
	ID           string
	URL          string
	Organization string
	Name         string
	Description  string // Empty string means null
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ContributionRepository defines the secondary port for contribution persistence.
type ContributionRepository interface {
	// Create persists a new contribution.
	Create(ctx context.Context, contribution *ContributionRecord) error

	// GetByName retrieves a contribution by repository and name.
	// Returns nil, nil when the repository has no contribution with that name.
	GetByName(ctx context.Context, repositoryID, name string) (*ContributionRecord, error)

	// List retrieves a repository's contributions ordered by priority (unset last),
	// then creation time, then ID.
	List(ctx context.Context, repositoryID string) ([]*ContributionRecord, error)

	// Update overwrites the mutable fields of an existing contribution.
	Update(ctx context.Context, contribution *ContributionRecord) error

	// GetNextID returns the next available contribution ID.
	GetNextID(ctx context.Context) (string, error)
}

// ContributionRecord represents a contribution as stored in persistence.
type ContributionRecord struct {
	ID             string
	RepositoryID   string
	Name           string
	Overview       string
	Description    string
	KeyCommits     []string
	RelatedCommits []string
	Category       string // Empty string means null
	Priority       int    // 0 means null
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CommitRepository defines the secondary port for resolved commit metadata.
type CommitRepository interface {
	// Upsert inserts a commit or refreshes the stored copy keyed by (repository, hash).
	Upsert(ctx context.Context, commit *CommitRecord) error

	// Resolve looks up a possibly abbreviated hash within a repository.
	// An exact hash match wins; otherwise a unique prefix match is returned.
	// Returns nil, nil when nothing (or more than one commit) matches.
	Resolve(ctx context.Context, repositoryID, ref string) (*CommitRecord, error)

	// List retrieves every stored commit of a repository, newest first.
	List(ctx context.Context, repositoryID string) ([]*CommitRecord, error)
}

// CommitRecord represents a resolved commit as stored in persistence.
type CommitRecord struct {
	RepositoryID string
	Hash         string
	AuthorName   string
	AuthorEmail  string
	CommittedAt  time.Time
	Summary      string
	Message      string
	FilesChanged []string
	LinesAdded   int
	LinesDeleted int
	SyncedAt     time.Time
}

// AgentRepository defines the secondary port for agent rules and prompt templates.
type AgentRepository interface {
	// ListRules retrieves all agent rules ordered by priority DESC, then name.
	ListRules(ctx context.Context) ([]*AgentRuleRecord, error)

	// ListPrompts retrieves all prompt templates ordered by name.
	ListPrompts(ctx context.Context) ([]*PromptRecord, error)

	// ReplaceAll swaps the contents of both tables in a single transaction.
	ReplaceAll(ctx context.Context, rules []*AgentRuleRecord, prompts []*PromptRecord) error
}

// AgentRuleRecord represents an agent rule as stored in persistence.
type AgentRuleRecord struct {
	Name        string
	Instruction string
	Priority    int
	Category    string
	Examples    string
}

// PromptRecord represents a prompt template as stored in persistence.
type PromptRecord struct {
	Name        string
	Text        string
	Description string
	Category    string
	Variables   []string
}

// StatsRepository defines the secondary port for aggregate counts.
type StatsRepository interface {
	// GetStats counts rows in every table and groups contributions by category.
	GetStats(ctx context.Context) (*StatsRecord, error)
}

// StatsRecord holds database-wide counts.
type StatsRecord struct {
	Repositories  int
	Contributions int
	Commits       int
	AgentRules    int
	Prompts       int
	Categories    []CategoryCount // ordered by count DESC, then category
}

// CategoryCount is the number of contributions in one category.
// Contributions without a category are reported as "Uncategorized".
type CategoryCount struct {
	Category string
	Count    int
}

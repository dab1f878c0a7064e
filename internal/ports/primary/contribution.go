package primary

import (
	"context"
	"time"

	"github.com/example/contrack/internal/core/contribution"
)

// ContributionService defines the primary port for contribution operations.
type ContributionService interface {
	// AddContribution records a new contribution. Fails if the name exists.
	AddContribution(ctx context.Context, req AddContributionRequest) (*AddContributionResponse, error)

	// UpdateContribution overwrites only the supplied fields of a contribution.
	UpdateContribution(ctx context.Context, req UpdateContributionRequest) (*UpdateContributionResponse, error)

	// GetContribution retrieves one contribution by repository URL and name.
	GetContribution(ctx context.Context, repositoryURL, name string) (*Contribution, error)

	// ListContributions lists a repository's contributions, highest priority first.
	ListContributions(ctx context.Context, repositoryURL string) ([]*Contribution, error)

	// ListContributionCommits pairs each referenced hash with its stored commit.
	ListContributionCommits(ctx context.Context, repositoryURL, name string) ([]*ContributionCommit, error)
}

// AddContributionRequest contains parameters for adding a contribution.
type AddContributionRequest struct {
	RepositoryURL  string
	Name           string
	Overview       string
	Description    string
	KeyCommits     contribution.CommitList
	RelatedCommits contribution.CommitList
	Category       string
	Priority       int // 0 leaves the priority unset
}

// AddContributionResponse contains the result of adding a contribution.
type AddContributionResponse struct {
	ContributionID string
	Contribution   *Contribution
	Warnings       []string
}

// UpdateContributionRequest identifies a contribution and carries the fields to change.
// Nil fields are left untouched.
type UpdateContributionRequest struct {
	RepositoryURL  string
	Name           string
	Overview       *string
	Description    *string
	KeyCommits     *contribution.CommitList
	RelatedCommits *contribution.CommitList
	Category       *string
	Priority       *int
}

// UpdateContributionResponse contains the updated contribution.
type UpdateContributionResponse struct {
	Contribution *Contribution
	Warnings     []string
}

// Contribution represents a contribution entity at the port boundary.
type Contribution struct {
	ID             string
	RepositoryID   string
	Name           string
	Overview       string
	Description    string
	KeyCommits     contribution.CommitList
	RelatedCommits contribution.CommitList
	Category       string
	Priority       int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Commit roles within a contribution.
const (
	CommitRoleKey     = "key"
	CommitRoleRelated = "related"
)

// ContributionCommit is one referenced hash and, when synchronized, its metadata.
type ContributionCommit struct {
	Ref    string
	Role   string
	Commit *Commit // nil when the hash has not been synchronized
}

// Commit represents resolved commit metadata at the port boundary.
type Commit struct {
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

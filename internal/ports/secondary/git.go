package secondary

import (
	"context"
	"time"

	apperrors "github.com/example/contrack/internal/errors"
)

// ErrCommitNotFound is returned by GitReader.ReadCommit when a reference does
// not name exactly one commit in the checkout.
var ErrCommitNotFound = apperrors.ErrCommitNotFound

// GitReader defines the secondary port for reading a local git checkout.
// Implementations never touch the network.
type GitReader interface {
	// Validate checks that path is a readable git repository.
	Validate(ctx context.Context, path string) error

	// OriginURL returns the URL of the checkout's origin remote.
	OriginURL(ctx context.Context, path string) (string, error)

	// ReadCommit resolves ref to a single commit and reads its metadata.
	// Returns an error wrapping ErrCommitNotFound when ref is unknown or ambiguous.
	ReadCommit(ctx context.Context, path, ref string) (*CommitInfo, error)
}

// CommitInfo is the metadata read from git for one commit.
type CommitInfo struct {
	Hash         string
	AuthorName   string
	AuthorEmail  string
	CommittedAt  time.Time
	Message      string
	FilesChanged []string
	LinesAdded   int
	LinesDeleted int
}

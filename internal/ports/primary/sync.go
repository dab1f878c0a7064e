package primary

import "context"

// SyncService defines the primary port for commit synchronization.
type SyncService interface {
	// Synchronize resolves every hash referenced by a repository's contributions
	// against a local checkout and stores the commit metadata.
	Synchronize(ctx context.Context, req SyncRequest) (*SyncReport, error)
}

// SyncRequest contains parameters for a synchronization run.
type SyncRequest struct {
	RepositoryURL string // derived from the checkout's origin remote when empty
	CheckoutPath  string
}

// Per-hash synchronization outcomes.
const (
	SyncStatusResolved = "resolved"
	SyncStatusNotFound = "not_found"
	SyncStatusFailed   = "failed"
)

// HashOutcome is the result of synchronizing one referenced hash.
type HashOutcome struct {
	Ref    string
	Hash   string // full hash, set when resolved
	Status string
	Detail string
}

// SyncReport summarizes a synchronization run.
type SyncReport struct {
	Repository *Repository
	Outcomes   []HashOutcome
	Resolved   int
	NotFound   int
	Failed     int
}

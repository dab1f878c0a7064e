package primary

import "context"

// ConfigService defines the primary port for the config.toml registry file.
type ConfigService interface {
	// SyncToFile writes every registered repository into the registry file.
	SyncToFile(ctx context.Context) (*ConfigSyncResult, error)

	// LoadFromFile registers or refreshes every repository listed in the registry file.
	LoadFromFile(ctx context.Context) (*ConfigLoadResult, error)

	// AddOrganization adds or replaces an organization entry in the registry file.
	AddOrganization(ctx context.Context, req AddOrganizationRequest) error

	// AddRepository adds or replaces a repository entry in the registry file.
	AddRepository(ctx context.Context, req InitializeRepositoryRequest) error
}

// AddOrganizationRequest contains parameters for an organization entry.
type AddOrganizationRequest struct {
	ID          string
	Name        string
	Description string
}

// ConfigSyncResult reports a database to file sync.
type ConfigSyncResult struct {
	Path          string
	Repositories  int
	Organizations int
}

// ConfigLoadResult reports a file to database load.
type ConfigLoadResult struct {
	Path    string
	Created int
	Updated int
}

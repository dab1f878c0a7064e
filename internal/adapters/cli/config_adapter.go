package cli

import (
	"context"
	"io"

	"github.com/example/contrack/internal/ports/primary"
)

// ConfigAdapter translates config subcommands to ConfigService calls.
type ConfigAdapter struct {
	service primary.ConfigService
	out     io.Writer
}

// NewConfigAdapter creates a new ConfigAdapter with the given service.
func NewConfigAdapter(service primary.ConfigService, out io.Writer) *ConfigAdapter {
	return &ConfigAdapter{service: service, out: out}
}

// Sync writes the database's repositories to the registry file.
func (a *ConfigAdapter) Sync(ctx context.Context) (*primary.ConfigSyncResult, error) {
	result, err := a.service.SyncToFile(ctx)
	if err != nil {
		return nil, err
	}
	success(a.out, "Wrote %d repositories and %d organizations to %s", result.Repositories, result.Organizations, result.Path)
	return result, nil
}

// Load registers the registry file's repositories in the database.
func (a *ConfigAdapter) Load(ctx context.Context) (*primary.ConfigLoadResult, error) {
	result, err := a.service.LoadFromFile(ctx)
	if err != nil {
		return result, err
	}
	success(a.out, "Loaded %s: %d created, %d updated", result.Path, result.Created, result.Updated)
	return result, nil
}

// AddOrganization adds an organization to the registry file.
func (a *ConfigAdapter) AddOrganization(ctx context.Context, req primary.AddOrganizationRequest) error {
	if err := a.service.AddOrganization(ctx, req); err != nil {
		return err
	}
	success(a.out, "Added organization %s to config file", req.ID)
	return nil
}

// AddRepository adds a repository to the registry file.
func (a *ConfigAdapter) AddRepository(ctx context.Context, req primary.InitializeRepositoryRequest) error {
	if err := a.service.AddRepository(ctx, req); err != nil {
		return err
	}
	success(a.out, "Added repository %s to config file", req.URL)
	warn(a.out, "Run `contrack config load` to register it in the database")
	return nil
}

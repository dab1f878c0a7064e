package app

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/example/contrack/internal/config"
	"github.com/example/contrack/internal/core/repository"
	apperrors "github.com/example/contrack/internal/errors"
	"github.com/example/contrack/internal/ports/primary"
	"github.com/example/contrack/internal/ports/secondary"
)

// ConfigServiceImpl implements the ConfigService interface.
// It mirrors the repositories table into config.toml and back.
type ConfigServiceImpl struct {
	repoService primary.RepositoryService
	store       secondary.RegistryFileStore
	logger      *slog.Logger
}

// NewConfigService creates a new ConfigService with injected dependencies.
func NewConfigService(repoService primary.RepositoryService, store secondary.RegistryFileStore, logger *slog.Logger) *ConfigServiceImpl {
	return &ConfigServiceImpl{
		repoService: repoService,
		store:       store,
		logger:      logger,
	}
}

// SyncToFile writes every registered repository into the registry file.
// Entries already in the file are kept; database values win on conflict.
func (s *ConfigServiceImpl) SyncToFile(ctx context.Context) (*primary.ConfigSyncResult, error) {
	reg, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	repos, err := s.repoService.ListRepositories(ctx)
	if err != nil {
		return nil, err
	}

	for _, r := range repos {
		reg.Repositories[r.URL] = config.RepositoryEntry{
			Organization: r.Organization,
			Name:         r.Name,
			Description:  r.Description,
		}
		ensureOrganization(reg, r.Organization)
	}

	if err := s.save(ctx, reg); err != nil {
		return nil, err
	}

	s.logger.Debug("registry file written", "path", s.store.Path(), "repositories", len(reg.Repositories))
	return &primary.ConfigSyncResult{
		Path:          s.store.Path(),
		Repositories:  len(reg.Repositories),
		Organizations: len(reg.Organizations),
	}, nil
}

// LoadFromFile registers or refreshes every repository listed in the registry file.
// Every entry is checked before any is applied, so an invalid file changes nothing.
func (s *ConfigServiceImpl) LoadFromFile(ctx context.Context) (*primary.ConfigLoadResult, error) {
	reg, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(reg.Repositories))
	for url := range reg.Repositories {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	requests := make([]primary.InitializeRepositoryRequest, 0, len(urls))
	for _, url := range urls {
		entry := reg.Repositories[url]
		req := trimRepositoryRequest(primary.InitializeRepositoryRequest{
			URL:          url,
			Organization: entry.Organization,
			Name:         entry.Name,
			Description:  entry.Description,
		})
		result := repository.CanInitializeRepository(repository.InitializeRepositoryContext{
			URL:          req.URL,
			Organization: req.Organization,
			Name:         req.Name,
		})
		if !result.Allowed {
			return nil, apperrors.InvalidInput("%s: repository %q: %s", s.store.Path(), url, result.Reason)
		}
		requests = append(requests, req)
	}

	result := &primary.ConfigLoadResult{Path: s.store.Path()}
	for _, req := range requests {
		_, created, err := s.repoService.UpsertRepository(ctx, req)
		if err != nil {
			return result, err
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	return result, nil
}

// AddOrganization adds or replaces an organization entry in the registry file.
func (s *ConfigServiceImpl) AddOrganization(ctx context.Context, req primary.AddOrganizationRequest) error {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return apperrors.InvalidInput("organization ID cannot be empty")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = id
	}

	reg, err := s.load(ctx)
	if err != nil {
		return err
	}
	reg.Organizations[id] = config.Organization{Name: name, Description: strings.TrimSpace(req.Description)}
	return s.save(ctx, reg)
}

// AddRepository adds or replaces a repository entry in the registry file.
// The database is untouched until `config load`.
func (s *ConfigServiceImpl) AddRepository(ctx context.Context, req primary.InitializeRepositoryRequest) error {
	req = trimRepositoryRequest(req)
	result := repository.CanInitializeRepository(repository.InitializeRepositoryContext{
		URL:          req.URL,
		Organization: req.Organization,
		Name:         req.Name,
	})
	if err := result.Error(); err != nil {
		return err
	}

	reg, err := s.load(ctx)
	if err != nil {
		return err
	}
	reg.Repositories[req.URL] = config.RepositoryEntry{
		Organization: req.Organization,
		Name:         req.Name,
		Description:  req.Description,
	}
	ensureOrganization(reg, req.Organization)
	return s.save(ctx, reg)
}

func (s *ConfigServiceImpl) load(ctx context.Context) (*config.RegistryFile, error) {
	reg, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeConfigFailed, "failed to read registry file", err)
	}
	return reg, nil
}

func (s *ConfigServiceImpl) save(ctx context.Context, reg *config.RegistryFile) error {
	if err := s.store.Save(ctx, reg); err != nil {
		return apperrors.Wrap(apperrors.CodeConfigFailed, "failed to write registry file", err)
	}
	return nil
}

// ensureOrganization adds a bare entry for an organization the file does not list yet.
func ensureOrganization(reg *config.RegistryFile, id string) {
	if id == "" {
		return
	}
	if _, ok := reg.Organizations[id]; !ok {
		reg.Organizations[id] = config.Organization{Name: id}
	}
}

// Ensure ConfigServiceImpl implements the interface
var _ primary.ConfigService = (*ConfigServiceImpl)(nil)

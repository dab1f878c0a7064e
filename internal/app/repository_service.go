package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/example/contrack/internal/core/repository"
	apperrors "github.com/example/contrack/internal/errors"
	"github.com/example/contrack/internal/ports/primary"
	"github.com/example/contrack/internal/ports/secondary"
)

// RepositoryServiceImpl implements the RepositoryService interface.
type RepositoryServiceImpl struct {
	repoRepo secondary.RepositoryRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewRepositoryService creates a new RepositoryService with injected dependencies.
func NewRepositoryService(repoRepo secondary.RepositoryRepository, logger *slog.Logger) *RepositoryServiceImpl {
	return &RepositoryServiceImpl{
		repoRepo: repoRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// InitializeRepository registers a new repository.
func (s *RepositoryServiceImpl) InitializeRepository(ctx context.Context, req primary.InitializeRepositoryRequest) (*primary.InitializeRepositoryResponse, error) {
	req = trimRepositoryRequest(req)

	existing, err := s.repoRepo.GetByURL(ctx, req.URL)
	if err != nil {
		return nil, apperrors.Storage("failed to check repository URL", err)
	}

	result := repository.CanInitializeRepository(repository.InitializeRepositoryContext{
		URL:          req.URL,
		Organization: req.Organization,
		Name:         req.Name,
		URLExists:    existing != nil,
	})
	if err := result.Error(); err != nil {
		return nil, err
	}

	created, err := s.create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("repository initialized", "id", created.ID, "url", created.URL)
	return &primary.InitializeRepositoryResponse{
		RepositoryID: created.ID,
		Repository:   recordToRepository(created),
	}, nil
}

// ResolveRepository looks up a registered repository by URL.
func (s *RepositoryServiceImpl) ResolveRepository(ctx context.Context, url string) (*primary.Repository, error) {
	record, err := resolveRepository(ctx, s.repoRepo, url)
	if err != nil {
		return nil, err
	}
	return recordToRepository(record), nil
}

// ListRepositories lists every registered repository ordered by name.
func (s *RepositoryServiceImpl) ListRepositories(ctx context.Context) ([]*primary.Repository, error) {
	records, err := s.repoRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Storage("failed to list repositories", err)
	}

	repos := make([]*primary.Repository, len(records))
	for i, r := range records {
		repos[i] = recordToRepository(r)
	}
	return repos, nil
}

// UpsertRepository creates the repository or refreshes its metadata.
// The boolean result reports whether a new repository was created.
func (s *RepositoryServiceImpl) UpsertRepository(ctx context.Context, req primary.InitializeRepositoryRequest) (*primary.Repository, bool, error) {
	req = trimRepositoryRequest(req)

	result := repository.CanInitializeRepository(repository.InitializeRepositoryContext{
		URL:          req.URL,
		Organization: req.Organization,
		Name:         req.Name,
	})
	if err := result.Error(); err != nil {
		return nil, false, err
	}

	existing, err := s.repoRepo.GetByURL(ctx, req.URL)
	if err != nil {
		return nil, false, apperrors.Storage("failed to check repository URL", err)
	}

	if existing == nil {
		created, err := s.create(ctx, req)
		if err != nil {
			return nil, false, err
		}
		return recordToRepository(created), true, nil
	}

	existing.Organization = req.Organization
	existing.Name = req.Name
	existing.Description = req.Description
	existing.UpdatedAt = s.now()
	if err := s.repoRepo.Update(ctx, existing); err != nil {
		return nil, false, apperrors.Storage("failed to update repository", err)
	}
	return recordToRepository(existing), false, nil
}

func (s *RepositoryServiceImpl) create(ctx context.Context, req primary.InitializeRepositoryRequest) (*secondary.RepositoryRecord, error) {
	nextID, err := s.repoRepo.GetNextID(ctx)
	if err != nil {
		return nil, apperrors.Storage("failed to generate repository ID", err)
	}

	now := s.now()
	record := &secondary.RepositoryRecord{
		ID:           nextID,
		URL:          req.URL,
		Organization: req.Organization,
		Name:         req.Name,
		Description:  req.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repoRepo.Create(ctx, record); err != nil {
		return nil, apperrors.Storage("failed to create repository", err)
	}

	created, err := s.repoRepo.GetByID(ctx, nextID)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch created repository", err)
	}
	return created, nil
}

// resolveRepository returns the repository registered under url or a not-found error.
func resolveRepository(ctx context.Context, repos secondary.RepositoryRepository, url string) (*secondary.RepositoryRecord, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, apperrors.InvalidInput("repository URL cannot be empty")
	}

	record, err := repos.GetByURL(ctx, url)
	if err != nil {
		return nil, apperrors.Storage("failed to look up repository", err)
	}
	if record == nil {
		return nil, apperrors.RepositoryNotFound(url)
	}
	return record, nil
}

func trimRepositoryRequest(req primary.InitializeRepositoryRequest) primary.InitializeRepositoryRequest {
	return primary.InitializeRepositoryRequest{
		URL:          strings.TrimSpace(req.URL),
		Organization: strings.TrimSpace(req.Organization),
		Name:         strings.TrimSpace(req.Name),
		Description:  strings.TrimSpace(req.Description),
	}
}

func recordToRepository(r *secondary.RepositoryRecord) *primary.Repository {
	return &primary.Repository{
		ID:           r.ID,
		URL:          r.URL,
		Organization: r.Organization,
		Name:         r.Name,
		Description:  r.Description,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Ensure RepositoryServiceImpl implements the interface
var _ primary.RepositoryService = (*RepositoryServiceImpl)(nil)

package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/example/contrack/internal/core/contribution"
	apperrors "github.com/example/contrack/internal/errors"
	"github.com/example/contrack/internal/ports/primary"
	"github.com/example/contrack/internal/ports/secondary"
)

// ContributionServiceImpl implements the ContributionService interface.
type ContributionServiceImpl struct {
	repoRepo         secondary.RepositoryRepository
	contributionRepo secondary.ContributionRepository
	commitRepo       secondary.CommitRepository
	logger           *slog.Logger
	now              func() time.Time
}

// NewContributionService creates a new ContributionService with injected dependencies.
func NewContributionService(
	repoRepo secondary.RepositoryRepository,
	contributionRepo secondary.ContributionRepository,
	commitRepo secondary.CommitRepository,
	logger *slog.Logger,
) *ContributionServiceImpl {
	return &ContributionServiceImpl{
		repoRepo:         repoRepo,
		contributionRepo: contributionRepo,
		commitRepo:       commitRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// AddContribution records a new contribution.
func (s *ContributionServiceImpl) AddContribution(ctx context.Context, req primary.AddContributionRequest) (*primary.AddContributionResponse, error) {
	repo, err := resolveRepository(ctx, s.repoRepo, req.RepositoryURL)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	existing, err := s.contributionRepo.GetByName(ctx, repo.ID, name)
	if err != nil {
		return nil, apperrors.Storage("failed to check contribution name", err)
	}

	// Evaluate guard
	result := contribution.CanAddContribution(contribution.AddContributionContext{
		RepositoryURL: repo.URL,
		Name:          name,
		KeyCommits:    req.KeyCommits,
		Priority:      req.Priority,
		NameExists:    existing != nil,
	})
	if err := result.Error(); err != nil {
		return nil, err
	}

	category := strings.TrimSpace(req.Category)
	warnings := contribution.Advisories(req.Priority, category, req.KeyCommits, req.RelatedCommits)
	s.logWarnings(name, warnings)

	nextID, err := s.contributionRepo.GetNextID(ctx)
	if err != nil {
		return nil, apperrors.Storage("failed to generate contribution ID", err)
	}

	now := s.now()
	record := &secondary.ContributionRecord{
		ID:             nextID,
		RepositoryID:   repo.ID,
		Name:           name,
		Overview:       req.Overview,
		Description:    req.Description,
		KeyCommits:     req.KeyCommits,
		RelatedCommits: req.RelatedCommits,
		Category:       category,
		Priority:       req.Priority,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.contributionRepo.Create(ctx, record); err != nil {
		return nil, apperrors.Storage("failed to create contribution", err)
	}

	created, err := s.contributionRepo.GetByName(ctx, repo.ID, name)
	if err != nil || created == nil {
		return nil, apperrors.Storage("failed to fetch created contribution", err)
	}

	s.logger.Debug("contribution added", "id", created.ID, "repository", repo.URL, "name", name)
	return &primary.AddContributionResponse{
		ContributionID: created.ID,
		Contribution:   recordToContribution(created),
		Warnings:       warnings,
	}, nil
}

// UpdateContribution overwrites only the supplied fields of a contribution.
func (s *ContributionServiceImpl) UpdateContribution(ctx context.Context, req primary.UpdateContributionRequest) (*primary.UpdateContributionResponse, error) {
	repo, err := resolveRepository(ctx, s.repoRepo, req.RepositoryURL)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	record, err := s.contributionRepo.GetByName(ctx, repo.ID, name)
	if err != nil {
		return nil, apperrors.Storage("failed to get contribution", err)
	}

	result := contribution.CanUpdateContribution(contribution.UpdateContributionContext{
		RepositoryURL:  repo.URL,
		Name:           name,
		Exists:         record != nil,
		FieldsSupplied: countSupplied(req),
		KeyCommits:     req.KeyCommits,
		Priority:       req.Priority,
	})
	if err := result.Error(); err != nil {
		return nil, err
	}

	var changedLists []contribution.CommitList
	if req.Overview != nil {
		record.Overview = *req.Overview
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.KeyCommits != nil {
		record.KeyCommits = *req.KeyCommits
		changedLists = append(changedLists, *req.KeyCommits)
	}
	if req.RelatedCommits != nil {
		record.RelatedCommits = *req.RelatedCommits
		changedLists = append(changedLists, *req.RelatedCommits)
	}

	// Only newly supplied advisory values are warned about.
	warnPriority, warnCategory := 0, ""
	if req.Category != nil {
		record.Category = strings.TrimSpace(*req.Category)
		warnCategory = record.Category
	}
	if req.Priority != nil {
		record.Priority = *req.Priority
		warnPriority = record.Priority
	}
	warnings := contribution.Advisories(warnPriority, warnCategory, changedLists...)
	s.logWarnings(name, warnings)

	record.UpdatedAt = s.now()
	if err := s.contributionRepo.Update(ctx, record); err != nil {
		return nil, apperrors.Storage("failed to update contribution", err)
	}

	s.logger.Debug("contribution updated", "id", record.ID, "repository", repo.URL, "name", name)
	return &primary.UpdateContributionResponse{
		Contribution: recordToContribution(record),
		Warnings:     warnings,
	}, nil
}

// GetContribution retrieves one contribution by repository URL and name.
func (s *ContributionServiceImpl) GetContribution(ctx context.Context, repositoryURL, name string) (*primary.Contribution, error) {
	_, record, err := s.lookup(ctx, repositoryURL, name)
	if err != nil {
		return nil, err
	}
	return recordToContribution(record), nil
}

// ListContributions lists a repository's contributions, highest priority first.
func (s *ContributionServiceImpl) ListContributions(ctx context.Context, repositoryURL string) ([]*primary.Contribution, error) {
	repo, err := resolveRepository(ctx, s.repoRepo, repositoryURL)
	if err != nil {
		return nil, err
	}

	records, err := s.contributionRepo.List(ctx, repo.ID)
	if err != nil {
		return nil, apperrors.Storage("failed to list contributions", err)
	}

	contributions := make([]*primary.Contribution, len(records))
	for i, r := range records {
		contributions[i] = recordToContribution(r)
	}
	return contributions, nil
}

// ListContributionCommits pairs each referenced hash with its stored commit.
// Key commits come first, then related commits, each in stored order.
func (s *ContributionServiceImpl) ListContributionCommits(ctx context.Context, repositoryURL, name string) ([]*primary.ContributionCommit, error) {
	repo, record, err := s.lookup(ctx, repositoryURL, name)
	if err != nil {
		return nil, err
	}

	var out []*primary.ContributionCommit
	for _, group := range []struct {
		role string
		refs []string
	}{
		{primary.CommitRoleKey, record.KeyCommits},
		{primary.CommitRoleRelated, record.RelatedCommits},
	} {
		for _, ref := range group.refs {
			stored, err := s.commitRepo.Resolve(ctx, repo.ID, ref)
			if err != nil {
				return nil, apperrors.Storage("failed to look up commit", err)
			}
			item := &primary.ContributionCommit{Ref: ref, Role: group.role}
			if stored != nil {
				item.Commit = recordToCommit(stored)
			}
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *ContributionServiceImpl) lookup(ctx context.Context, repositoryURL, name string) (*secondary.RepositoryRecord, *secondary.ContributionRecord, error) {
	repo, err := resolveRepository(ctx, s.repoRepo, repositoryURL)
	if err != nil {
		return nil, nil, err
	}

	name = strings.TrimSpace(name)
	record, err := s.contributionRepo.GetByName(ctx, repo.ID, name)
	if err != nil {
		return nil, nil, apperrors.Storage("failed to get contribution", err)
	}
	if record == nil {
		return nil, nil, apperrors.ContributionNotFound(repo.URL, name)
	}
	return repo, record, nil
}

// logWarnings records advisory warnings at debug level; callers show them to the user.
func (s *ContributionServiceImpl) logWarnings(name string, warnings []string) {
	for _, w := range warnings {
		s.logger.Debug("advisory warning", "contribution", name, "warning", w)
	}
}

func countSupplied(req primary.UpdateContributionRequest) int {
	n := 0
	for _, supplied := range []bool{
		req.Overview != nil,
		req.Description != nil,
		req.KeyCommits != nil,
		req.RelatedCommits != nil,
		req.Category != nil,
		req.Priority != nil,
	} {
		if supplied {
			n++
		}
	}
	return n
}

func recordToContribution(r *secondary.ContributionRecord) *primary.Contribution {
	return &primary.Contribution{
		ID:             r.ID,
		RepositoryID:   r.RepositoryID,
		Name:           r.Name,
		Overview:       r.Overview,
		Description:    r.Description,
		KeyCommits:     contribution.CommitList(r.KeyCommits),
		RelatedCommits: contribution.CommitList(r.RelatedCommits),
		Category:       r.Category,
		Priority:       r.Priority,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func recordToCommit(r *secondary.CommitRecord) *primary.Commit {
	return &primary.Commit{
		Hash:         r.Hash,
		AuthorName:   r.AuthorName,
		AuthorEmail:  r.AuthorEmail,
		CommittedAt:  r.CommittedAt,
		Summary:      r.Summary,
		Message:      r.Message,
		FilesChanged: r.FilesChanged,
		LinesAdded:   r.LinesAdded,
		LinesDeleted: r.LinesDeleted,
		SyncedAt:     r.SyncedAt,
	}
}

// Ensure ContributionServiceImpl implements the interface
var _ primary.ContributionService = (*ContributionServiceImpl)(nil)

package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/example/contrack/internal/core/commit"
	apperrors "github.com/example/contrack/internal/errors"
	"github.com/example/contrack/internal/ports/primary"
	"github.com/example/contrack/internal/ports/secondary"
)

// SyncServiceImpl implements the SyncService interface.
type SyncServiceImpl struct {
	repoRepo         secondary.RepositoryRepository
	contributionRepo secondary.ContributionRepository
	commitRepo       secondary.CommitRepository
	git              secondary.GitReader
	logger           *slog.Logger
	now              func() time.Time
}

// NewSyncService creates a new SyncService with injected dependencies.
func NewSyncService(
	repoRepo secondary.RepositoryRepository,
	contributionRepo secondary.ContributionRepository,
	commitRepo secondary.CommitRepository,
	git secondary.GitReader,
	logger *slog.Logger,
) *SyncServiceImpl {
	return &SyncServiceImpl{
		repoRepo:         repoRepo,
		contributionRepo: contributionRepo,
		commitRepo:       commitRepo,
		git:              git,
		logger:           logger,
		now:              time.Now,
	}
}

// Synchronize resolves every hash referenced by the repository's contributions
// against the checkout and upserts the commit metadata. A hash that cannot be
// resolved is reported in its outcome and does not stop the run.
func (s *SyncServiceImpl) Synchronize(ctx context.Context, req primary.SyncRequest) (*primary.SyncReport, error) {
	path := req.CheckoutPath
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeGitFailed, "failed to determine working directory", err)
		}
		path = cwd
	}

	if err := s.git.Validate(ctx, path); err != nil {
		return nil, apperrors.NotAGitRepository(path, err)
	}

	url := strings.TrimSpace(req.RepositoryURL)
	if url == "" {
		origin, err := s.git.OriginURL(ctx, path)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeGitFailed, "no --repo-url given and the checkout has no usable origin remote", err)
		}
		url = origin
		s.logger.Debug("repository derived from origin", "url", url)
	}

	repo, err := resolveRepository(ctx, s.repoRepo, url)
	if err != nil {
		return nil, err
	}

	contributions, err := s.contributionRepo.List(ctx, repo.ID)
	if err != nil {
		return nil, apperrors.Storage("failed to list contributions", err)
	}

	var lists [][]string
	for _, c := range contributions {
		lists = append(lists, c.KeyCommits, c.RelatedCommits)
	}
	refs := commit.CollectRefs(lists...)

	report := &primary.SyncReport{Repository: recordToRepository(repo)}
	syncedAt := s.now()

	for _, ref := range refs {
		outcome := s.syncRef(ctx, path, repo.ID, ref, syncedAt)
		switch outcome.Status {
		case primary.SyncStatusResolved:
			report.Resolved++
		case primary.SyncStatusNotFound:
			report.NotFound++
		default:
			report.Failed++
		}
		s.logger.Debug("sync outcome", "ref", ref, "status", outcome.Status, "detail", outcome.Detail)
		report.Outcomes = append(report.Outcomes, outcome)
	}

	return report, nil
}

func (s *SyncServiceImpl) syncRef(ctx context.Context, path, repositoryID, ref string, syncedAt time.Time) primary.HashOutcome {
	outcome := primary.HashOutcome{Ref: ref}

	info, err := s.git.ReadCommit(ctx, path, ref)
	if errors.Is(err, secondary.ErrCommitNotFound) {
		outcome.Status = primary.SyncStatusNotFound
		outcome.Detail = "commit not found in checkout"
		return outcome
	}
	if err != nil {
		outcome.Status = primary.SyncStatusFailed
		outcome.Detail = err.Error()
		return outcome
	}

	err = s.commitRepo.Upsert(ctx, &secondary.CommitRecord{
		RepositoryID: repositoryID,
		Hash:         info.Hash,
		AuthorName:   info.AuthorName,
		AuthorEmail:  info.AuthorEmail,
		CommittedAt:  info.CommittedAt,
		Summary:      commit.Summary(info.Message),
		Message:      info.Message,
		FilesChanged: info.FilesChanged,
		LinesAdded:   info.LinesAdded,
		LinesDeleted: info.LinesDeleted,
		SyncedAt:     syncedAt,
	})
	if err != nil {
		outcome.Status = primary.SyncStatusFailed
		outcome.Detail = err.Error()
		return outcome
	}

	outcome.Hash = info.Hash
	outcome.Status = primary.SyncStatusResolved
	return outcome
}

// Ensure SyncServiceImpl implements the interface
var _ primary.SyncService = (*SyncServiceImpl)(nil)

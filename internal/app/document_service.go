package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/example/contrack/internal/core/document"
	apperrors "github.com/example/contrack/internal/errors"
	"github.com/example/contrack/internal/ports/primary"
	"github.com/example/contrack/internal/ports/secondary"
	"github.com/example/contrack/internal/templates"
)

// DocumentServiceImpl implements the DocumentService interface.
type DocumentServiceImpl struct {
	repoRepo         secondary.RepositoryRepository
	contributionRepo secondary.ContributionRepository
	commitRepo       secondary.CommitRepository
	logger           *slog.Logger
	now              func() time.Time
}

// NewDocumentService creates a new DocumentService with injected dependencies.
func NewDocumentService(
	repoRepo secondary.RepositoryRepository,
	contributionRepo secondary.ContributionRepository,
	commitRepo secondary.CommitRepository,
	logger *slog.Logger,
) *DocumentServiceImpl {
	return &DocumentServiceImpl{
		repoRepo:         repoRepo,
		contributionRepo: contributionRepo,
		commitRepo:       commitRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// GenerateDocument renders a repository's contributions as markdown.
func (s *DocumentServiceImpl) GenerateDocument(ctx context.Context, req primary.GenerateDocumentRequest) (*primary.GenerateDocumentResponse, error) {
	if req.Output == nil {
		return nil, apperrors.InvalidInput("no output destination given")
	}

	repo, err := resolveRepository(ctx, s.repoRepo, req.RepositoryURL)
	if err != nil {
		return nil, err
	}

	records, err := s.contributionRepo.List(ctx, repo.ID)
	if err != nil {
		return nil, apperrors.Storage("failed to list contributions", err)
	}

	doc := document.Document{
		RepositoryName: repo.Name,
		RepositoryURL:  repo.URL,
		Organization:   repo.Organization,
		Description:    repo.Description,
		Author:         strings.TrimSpace(req.Author),
		GeneratedAt:    s.now(),
	}

	unresolved := 0
	for _, r := range records {
		lines, err := s.keyCommitLines(ctx, repo.ID, r.KeyCommits)
		if err != nil {
			return nil, err
		}
		if !document.MatchesAuthor(req.Author, lines) {
			continue
		}
		for _, l := range lines {
			if !l.Resolved {
				unresolved++
			}
		}
		doc.Entries = append(doc.Entries, document.Entry{
			Name:         r.Name,
			Category:     r.Category,
			Priority:     r.Priority,
			Overview:     r.Overview,
			Description:  r.Description,
			KeyCommits:   lines,
			RelatedCount: len(r.RelatedCommits),
		})
	}
	document.Sort(doc.Entries)

	if err := templates.RenderDocument(req.Output, doc); err != nil {
		return nil, err
	}

	s.logger.Debug("document rendered", "repository", repo.URL, "entries", len(doc.Entries), "unresolved", unresolved)
	return &primary.GenerateDocumentResponse{
		Contributions: len(doc.Entries),
		Unresolved:    unresolved,
	}, nil
}

func (s *DocumentServiceImpl) keyCommitLines(ctx context.Context, repositoryID string, refs []string) ([]document.CommitLine, error) {
	lines := make([]document.CommitLine, 0, len(refs))
	for _, ref := range refs {
		stored, err := s.commitRepo.Resolve(ctx, repositoryID, ref)
		if err != nil {
			return nil, apperrors.Storage("failed to look up commit", err)
		}
		line := document.CommitLine{Ref: ref}
		if stored != nil {
			line.Hash = stored.Hash
			line.AuthorName = stored.AuthorName
			line.AuthorEmail = stored.AuthorEmail
			line.CommittedAt = stored.CommittedAt
			line.Summary = stored.Summary
			line.Resolved = true
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Ensure DocumentServiceImpl implements the interface
var _ primary.DocumentService = (*DocumentServiceImpl)(nil)

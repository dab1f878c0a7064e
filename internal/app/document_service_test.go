package app

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	apperrors "github.com/example/contrack/internal/errors"
	"github.com/example/contrack/internal/ports/primary"
	"github.com/example/contrack/internal/ports/secondary"
)

func newTestDocumentService() (*DocumentServiceImpl, *mockContributionRepository, *mockCommitRepository) {
	repoRepo := newMockRepositoryRepository()
	repoRepo.seed(testRepoURL)
	contributionRepo := newMockContributionRepository()
	commitRepo := newMockCommitRepository()

	service := NewDocumentService(repoRepo, contributionRepo, commitRepo, testLogger)
	service.now = func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) }
	return service, contributionRepo, commitRepo
}

func storeCommit(commitRepo *mockCommitRepository, hash, author, email, summary string) {
	_ = commitRepo.Upsert(context.Background(), &secondary.CommitRecord{
		RepositoryID: "REPO-001",
		Hash:         hash,
		AuthorName:   author,
		AuthorEmail:  email,
		CommittedAt:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Summary:      summary,
	})
}

// ============================================================================
// GenerateDocument Tests
// ============================================================================

func TestGenerateDocument_NoContributions(t *testing.T) {
	service, _, _ := newTestDocumentService()
	var buf bytes.Buffer

	resp, err := service.GenerateDocument(context.Background(), primary.GenerateDocumentRequest{
		RepositoryURL: testRepoURL,
		Output:        &buf,
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Contributions != 0 {
		t.Errorf("expected 0 contributions, got %d", resp.Contributions)
	}
	out := buf.String()
	if !strings.Contains(out, "# widgets Contributions") {
		t.Errorf("expected repository header, got:\n%s", out)
	}
	if !strings.Contains(out, "No contributions recorded.") {
		t.Errorf("expected empty marker, got:\n%s", out)
	}
}

func TestGenerateDocument_OrderAndCommitRows(t *testing.T) {
	service, contributionRepo, commitRepo := newTestDocumentService()
	seedContribution(t, contributionRepo, "Zeta", []string{"abc1234"}, nil)
	seedContribution(t, contributionRepo, "Alpha", []string{"deadbeef"}, []string{"1111111", "2222222"})
	contributionRepo.items[0].Priority = 9
	storeCommit(commitRepo, knownHash, "Ada Lovelace", "ada@example.com", "Add login flow")
	var buf bytes.Buffer

	resp, err := service.GenerateDocument(context.Background(), primary.GenerateDocumentRequest{
		RepositoryURL: testRepoURL,
		Output:        &buf,
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Contributions != 2 || resp.Unresolved != 1 {
		t.Errorf("expected 2 contributions and 1 unresolved, got %+v", resp)
	}
	out := buf.String()
	zeta := strings.Index(out, "## Zeta")
	alpha := strings.Index(out, "## Alpha")
	if zeta < 0 || alpha < 0 || zeta > alpha {
		t.Errorf("expected prioritized Zeta before unset Alpha, got:\n%s", out)
	}
	if !strings.Contains(out, "| `abc1234d` | Ada Lovelace | 2024-03-01 | Add login flow |") {
		t.Errorf("expected resolved commit row, got:\n%s", out)
	}
	if !strings.Contains(out, "| `deadbeef` | unresolved | | |") {
		t.Errorf("expected unresolved commit row, got:\n%s", out)
	}
	if !strings.Contains(out, "Related commits: 2") {
		t.Errorf("expected related count, got:\n%s", out)
	}
	if !strings.Contains(out, "_Generated by contrack on 2024-06-01_") {
		t.Errorf("expected footer with generation date, got:\n%s", out)
	}
}

func TestGenerateDocument_AuthorFilter(t *testing.T) {
	service, contributionRepo, commitRepo := newTestDocumentService()
	seedContribution(t, contributionRepo, "Mine", []string{"abc1234"}, nil)
	seedContribution(t, contributionRepo, "Theirs", []string{"fedcba9"}, nil)
	seedContribution(t, contributionRepo, "Unsynced", []string{"0000000"}, nil)
	storeCommit(commitRepo, knownHash, "Ada Lovelace", "ada@example.com", "Add login flow")
	storeCommit(commitRepo, "fedcba9876543210fedcba9876543210fedcba98", "Grace Hopper", "grace@example.com", "Add billing")

	tests := []struct {
		name   string
		author string
		want   []string
		absent []string
	}{
		{"by email, case-insensitive", "  ADA@example.com ", []string{"## Mine"}, []string{"## Theirs", "## Unsynced"}},
		{"by name", "Grace Hopper", []string{"## Theirs"}, []string{"## Mine"}},
		{"no filter", "", []string{"## Mine", "## Theirs", "## Unsynced"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			resp, err := service.GenerateDocument(context.Background(), primary.GenerateDocumentRequest{
				RepositoryURL: testRepoURL,
				Author:        tt.author,
				Output:        &buf,
			})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.Contributions != len(tt.want) {
				t.Errorf("expected %d contributions, got %d", len(tt.want), resp.Contributions)
			}
			out := buf.String()
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("expected %q in output", s)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(out, s) {
					t.Errorf("did not expect %q in output", s)
				}
			}
		})
	}
}

func TestGenerateDocument_UnknownRepository(t *testing.T) {
	service, _, _ := newTestDocumentService()
	var buf bytes.Buffer

	_, err := service.GenerateDocument(context.Background(), primary.GenerateDocumentRequest{
		RepositoryURL: "https://github.com/acme/missing",
		Output:        &buf,
	})

	if !apperrors.IsCode(err, apperrors.CodeRepositoryNotFound) {
		t.Errorf("expected repository not found, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("expected nothing written")
	}
}

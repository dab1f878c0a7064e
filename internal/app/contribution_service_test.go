package app

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/example/contrack/internal/core/contribution"
	apperrors "github.com/example/contrack/internal/errors"
	"github.com/example/contrack/internal/logging"
	"github.com/example/contrack/internal/ports/primary"
	"github.com/example/contrack/internal/ports/secondary"
)

const testRepoURL = "https://github.com/acme/widgets"

func newTestContributionService() (*ContributionServiceImpl, *mockRepositoryRepository, *mockContributionRepository, *mockCommitRepository) {
	repoRepo := newMockRepositoryRepository()
	repoRepo.seed(testRepoURL)
	contributionRepo := newMockContributionRepository()
	commitRepo := newMockCommitRepository()

	service := NewContributionService(repoRepo, contributionRepo, commitRepo, testLogger)
	service.now = fixedClock()
	return service, repoRepo, contributionRepo, commitRepo
}

func addRequest(name string, priority int) primary.AddContributionRequest {
	return primary.AddContributionRequest{
		RepositoryURL: testRepoURL,
		Name:          name,
		Overview:      "Overview of " + name,
		Description:   "Details of " + name,
		KeyCommits:    contribution.CommitList{"abc1234"},
		Category:      "Core Feature",
		Priority:      priority,
	}
}

// ============================================================================
// AddContribution Tests
// ============================================================================

func TestAddContribution_RoundTrip(t *testing.T) {
	service, _, _, _ := newTestContributionService()
	ctx := context.Background()

	req := addRequest("Auth", 9)
	req.RelatedCommits = contribution.CommitList{"def5678", "0a1b2c3"}
	resp, err := service.AddContribution(ctx, req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.ContributionID != "CONTRIB-001" {
		t.Errorf("expected 'CONTRIB-001', got '%s'", resp.ContributionID)
	}
	if len(resp.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", resp.Warnings)
	}

	got, err := service.GetContribution(ctx, testRepoURL, "Auth")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Overview != "Overview of Auth" || got.Description != "Details of Auth" {
		t.Errorf("unexpected text fields: %+v", got)
	}
	if got.KeyCommits.String() != "abc1234" {
		t.Errorf("expected key commits 'abc1234', got '%s'", got.KeyCommits.String())
	}
	if got.RelatedCommits.Len() != 2 || got.RelatedCommits[1] != "0a1b2c3" {
		t.Errorf("expected related commits in order, got %v", got.RelatedCommits)
	}
	if got.Category != "Core Feature" || got.Priority != 9 {
		t.Errorf("expected category/priority preserved, got %q/%d", got.Category, got.Priority)
	}
}

func TestAddContribution_Duplicate(t *testing.T) {
	service, _, contributionRepo, _ := newTestContributionService()
	ctx := context.Background()

	if _, err := service.AddContribution(ctx, addRequest("Auth", 9)); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	_, err := service.AddContribution(ctx, addRequest("Auth", 3))

	if !apperrors.IsCode(err, apperrors.CodeContributionDup) {
		t.Fatalf("expected duplicate contribution error, got %v", err)
	}
	stored, _ := contributionRepo.GetByName(ctx, "REPO-001", "Auth")
	if stored.Priority != 9 {
		t.Errorf("expected original record untouched, got priority %d", stored.Priority)
	}
}

func TestAddContribution_UnknownRepository(t *testing.T) {
	service, _, _, _ := newTestContributionService()
	req := addRequest("Auth", 9)
	req.RepositoryURL = "https://github.com/acme/missing"

	_, err := service.AddContribution(context.Background(), req)

	if !apperrors.IsCode(err, apperrors.CodeRepositoryNotFound) {
		t.Errorf("expected repository not found, got %v", err)
	}
}

func TestAddContribution_RequiresKeyCommit(t *testing.T) {
	service, _, _, _ := newTestContributionService()
	req := addRequest("Auth", 9)
	req.KeyCommits = nil

	_, err := service.AddContribution(context.Background(), req)

	if !apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected invalid input, got %v", err)
	}
}

func TestAddContribution_Warnings(t *testing.T) {
	service, _, _, _ := newTestContributionService()
	req := addRequest("Auth", 42)
	req.Category = "Misc"
	req.KeyCommits = contribution.CommitList{"not-a-hash"}

	resp, err := service.AddContribution(context.Background(), req)

	if err != nil {
		t.Fatalf("advisory problems must not fail the add, got %v", err)
	}
	if len(resp.Warnings) != 3 {
		t.Errorf("expected 3 warnings, got %v", resp.Warnings)
	}
	if resp.Contribution.Priority != 42 {
		t.Errorf("expected out-of-range priority stored, got %d", resp.Contribution.Priority)
	}
}

func TestAddContribution_WarningsNotLoggedAtWarnLevel(t *testing.T) {
	service, _, _, _ := newTestContributionService()
	var logs bytes.Buffer
	service.logger = logging.NewLogger(&logs, logging.ParseLevel("warn"))
	req := addRequest("Auth", 42)
	req.Category = "Misc"

	resp, err := service.AddContribution(context.Background(), req)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(resp.Warnings) != 2 {
		t.Errorf("expected 2 warnings returned, got %v", resp.Warnings)
	}
	if logs.Len() != 0 {
		t.Errorf("expected warnings left to the caller, got log output: %s", logs.String())
	}
}

// ============================================================================
// UpdateContribution Tests
// ============================================================================

func TestUpdateContribution_PartialFields(t *testing.T) {
	service, _, _, _ := newTestContributionService()
	ctx := context.Background()
	added, err := service.AddContribution(ctx, addRequest("Auth", 9))
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	priority := 4
	related := contribution.CommitList{"feedface"}
	resp, err := service.UpdateContribution(ctx, primary.UpdateContributionRequest{
		RepositoryURL:  testRepoURL,
		Name:           "Auth",
		Priority:       &priority,
		RelatedCommits: &related,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got := resp.Contribution
	if got.Priority != 4 {
		t.Errorf("expected priority 4, got %d", got.Priority)
	}
	if got.RelatedCommits.String() != "feedface" {
		t.Errorf("expected related commits replaced, got %v", got.RelatedCommits)
	}
	if got.Overview != "Overview of Auth" || got.Category != "Core Feature" {
		t.Errorf("expected untouched fields preserved, got %+v", got)
	}
	if got.KeyCommits.String() != "abc1234" {
		t.Errorf("expected key commits preserved, got %v", got.KeyCommits)
	}
	if !got.UpdatedAt.After(added.Contribution.UpdatedAt) {
		t.Error("expected UpdatedAt to advance")
	}
	if !got.CreatedAt.Equal(added.Contribution.CreatedAt) {
		t.Error("expected CreatedAt unchanged")
	}
}

func TestUpdateContribution_UnknownName(t *testing.T) {
	service, _, contributionRepo, _ := newTestContributionService()
	overview := "new"

	_, err := service.UpdateContribution(context.Background(), primary.UpdateContributionRequest{
		RepositoryURL: testRepoURL,
		Name:          "Ghost",
		Overview:      &overview,
	})

	if !apperrors.IsCode(err, apperrors.CodeContributionNotFound) {
		t.Fatalf("expected contribution not found, got %v", err)
	}
	if len(contributionRepo.items) != 0 {
		t.Error("expected no contribution to be created")
	}
}

func TestUpdateContribution_NothingSupplied(t *testing.T) {
	service, _, _, _ := newTestContributionService()
	ctx := context.Background()
	if _, err := service.AddContribution(ctx, addRequest("Auth", 9)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	_, err := service.UpdateContribution(ctx, primary.UpdateContributionRequest{
		RepositoryURL: testRepoURL,
		Name:          "Auth",
	})

	if !apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected invalid input, got %v", err)
	}
}

func TestUpdateContribution_CannotEmptyKeyCommits(t *testing.T) {
	service, _, _, _ := newTestContributionService()
	ctx := context.Background()
	if _, err := service.AddContribution(ctx, addRequest("Auth", 9)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	empty := contribution.CommitList{}
	_, err := service.UpdateContribution(ctx, primary.UpdateContributionRequest{
		RepositoryURL: testRepoURL,
		Name:          "Auth",
		KeyCommits:    &empty,
	})

	if !apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected invalid input, got %v", err)
	}
}

// ============================================================================
// ListContributions / ListContributionCommits Tests
// ============================================================================

func TestListContributions_PriorityOrder(t *testing.T) {
	service, _, _, _ := newTestContributionService()
	ctx := context.Background()
	for _, req := range []primary.AddContributionRequest{
		addRequest("Low", 2),
		addRequest("Unset", 0),
		addRequest("High", 9),
		addRequest("AlsoHigh", 9),
	} {
		if _, err := service.AddContribution(ctx, req); err != nil {
			t.Fatalf("add %s failed: %v", req.Name, err)
		}
	}

	list, err := service.ListContributions(ctx, testRepoURL)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{"High", "AlsoHigh", "Low", "Unset"}
	if len(list) != len(want) {
		t.Fatalf("expected %d contributions, got %d", len(want), len(list))
	}
	for i, name := range want {
		if list[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, list[i].Name)
		}
	}
}

func TestListContributionCommits_PairsStoredCommits(t *testing.T) {
	service, _, _, commitRepo := newTestContributionService()
	ctx := context.Background()
	req := addRequest("Auth", 9)
	req.KeyCommits = contribution.CommitList{"abc1234", "9999999"}
	req.RelatedCommits = contribution.CommitList{"def5678"}
	if _, err := service.AddContribution(ctx, req); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	_ = commitRepo.Upsert(ctx, &secondary.CommitRecord{
		RepositoryID: "REPO-001",
		Hash:         "abc1234000000000000000000000000000000000",
		AuthorName:   "Ada",
		CommittedAt:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Summary:      "Add login",
	})

	commits, err := service.ListContributionCommits(ctx, testRepoURL, "Auth")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(commits) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(commits))
	}
	if commits[0].Role != primary.CommitRoleKey || commits[0].Commit == nil || commits[0].Commit.AuthorName != "Ada" {
		t.Errorf("expected first key commit resolved, got %+v", commits[0])
	}
	if commits[1].Commit != nil {
		t.Errorf("expected unsynchronized hash to have no commit, got %+v", commits[1].Commit)
	}
	if commits[2].Role != primary.CommitRoleRelated || commits[2].Ref != "def5678" {
		t.Errorf("expected related commit last, got %+v", commits[2])
	}
}

func TestGetContribution_NotFound(t *testing.T) {
	service, _, _, _ := newTestContributionService()

	_, err := service.GetContribution(context.Background(), testRepoURL, "Ghost")

	if apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}

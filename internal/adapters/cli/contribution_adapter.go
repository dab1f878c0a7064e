package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/contrack/internal/core/commit"
	"github.com/example/contrack/internal/ports/primary"
)

// ContributionAdapter is a thin adapter that translates CLI operations to ContributionService calls.
type ContributionAdapter struct {
	service primary.ContributionService
	out     io.Writer
}

// NewContributionAdapter creates a new ContributionAdapter with the given service.
func NewContributionAdapter(service primary.ContributionService, out io.Writer) *ContributionAdapter {
	return &ContributionAdapter{
		service: service,
		out:     out,
	}
}

// Add records a contribution and prints any advisory warnings.
func (a *ContributionAdapter) Add(ctx context.Context, req primary.AddContributionRequest) (*primary.AddContributionResponse, error) {
	resp, err := a.service.AddContribution(ctx, req)
	if err != nil {
		return nil, err
	}

	success(a.out, "Added contribution %s: %s", resp.ContributionID, resp.Contribution.Name)
	fmt.Fprintf(a.out, "  Key commits:     %d\n", resp.Contribution.KeyCommits.Len())
	fmt.Fprintf(a.out, "  Related commits: %d\n", resp.Contribution.RelatedCommits.Len())
	printWarnings(a.out, resp.Warnings)
	return resp, nil
}

// Update applies a partial update and prints any advisory warnings.
func (a *ContributionAdapter) Update(ctx context.Context, req primary.UpdateContributionRequest) (*primary.UpdateContributionResponse, error) {
	resp, err := a.service.UpdateContribution(ctx, req)
	if err != nil {
		return nil, err
	}

	success(a.out, "Updated contribution %s: %s", resp.Contribution.ID, resp.Contribution.Name)
	printWarnings(a.out, resp.Warnings)
	return resp, nil
}

// List prints a repository's contributions in priority order.
func (a *ContributionAdapter) List(ctx context.Context, repositoryURL string) ([]*primary.Contribution, error) {
	contributions, err := a.service.ListContributions(ctx, repositoryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}

	if len(contributions) == 0 {
		fmt.Fprintf(a.out, "No contributions recorded for %s.\n", repositoryURL)
		return contributions, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tPRIORITY\tCATEGORY\tKEY\tRELATED\tUPDATED")
	fmt.Fprintln(w, "----\t--------\t--------\t---\t-------\t-------")
	for _, c := range contributions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			c.Name,
			formatPriority(c.Priority),
			orDash(c.Category),
			c.KeyCommits.Len(),
			c.RelatedCommits.Len(),
			formatDate(c.UpdatedAt),
		)
	}
	w.Flush()

	return contributions, nil
}

// Show prints every field of one contribution.
func (a *ContributionAdapter) Show(ctx context.Context, repositoryURL, name string) (*primary.Contribution, error) {
	c, err := a.service.GetContribution(ctx, repositoryURL, name)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "\nContribution: %s (%s)\n", c.Name, c.ID)
	fmt.Fprintf(a.out, "Category:        %s\n", orDash(c.Category))
	fmt.Fprintf(a.out, "Priority:        %s\n", formatPriority(c.Priority))
	fmt.Fprintf(a.out, "Key commits:     %s\n", orDash(c.KeyCommits.String()))
	fmt.Fprintf(a.out, "Related commits: %s\n", orDash(c.RelatedCommits.String()))
	fmt.Fprintf(a.out, "Created:         %s\n", formatDate(c.CreatedAt))
	fmt.Fprintf(a.out, "Updated:         %s\n", formatDate(c.UpdatedAt))
	if c.Overview != "" {
		fmt.Fprintf(a.out, "\nOverview:\n  %s\n", c.Overview)
	}
	if c.Description != "" {
		fmt.Fprintf(a.out, "\nDescription:\n  %s\n", c.Description)
	}
	fmt.Fprintln(a.out)

	return c, nil
}

// Commits prints the commits a contribution references with any synchronized metadata.
func (a *ContributionAdapter) Commits(ctx context.Context, repositoryURL, name string) ([]*primary.ContributionCommit, error) {
	commits, err := a.service.ListContributionCommits(ctx, repositoryURL, name)
	if err != nil {
		return nil, err
	}

	unsynced := 0
	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ROLE\tREF\tHASH\tAUTHOR\tDATE\tFILES\t+/-\tSUMMARY")
	fmt.Fprintln(w, "----\t---\t----\t------\t----\t-----\t---\t-------")
	for _, cc := range commits {
		if cc.Commit == nil {
			unsynced++
			fmt.Fprintf(w, "%s\t%s\t-\t-\t-\t-\t-\t(not synchronized)\n", cc.Role, cc.Ref)
			continue
		}
		c := cc.Commit
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t+%d/-%d\t%s\n",
			cc.Role,
			cc.Ref,
			commit.Short(c.Hash),
			c.AuthorName,
			formatDate(c.CommittedAt),
			len(c.FilesChanged),
			c.LinesAdded,
			c.LinesDeleted,
			c.Summary,
		)
	}
	w.Flush()

	if unsynced > 0 {
		fmt.Fprintln(a.out)
		warn(a.out, "%d commit(s) not synchronized; run `contrack update --repo-url %s` in the checkout", unsynced, repositoryURL)
	}
	return commits, nil
}

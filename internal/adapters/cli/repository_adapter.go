package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/contrack/internal/ports/primary"
)

// RepositoryAdapter is a thin adapter that translates CLI operations to RepositoryService calls.
type RepositoryAdapter struct {
	service primary.RepositoryService
	out     io.Writer
}

// NewRepositoryAdapter creates a new RepositoryAdapter with the given service.
func NewRepositoryAdapter(service primary.RepositoryService, out io.Writer) *RepositoryAdapter {
	return &RepositoryAdapter{
		service: service,
		out:     out,
	}
}

// Init registers a repository.
func (a *RepositoryAdapter) Init(ctx context.Context, req primary.InitializeRepositoryRequest) (*primary.InitializeRepositoryResponse, error) {
	resp, err := a.service.InitializeRepository(ctx, req)
	if err != nil {
		return nil, err
	}

	success(a.out, "Registered repository %s: %s", resp.RepositoryID, resp.Repository.Name)
	fmt.Fprintf(a.out, "  URL:          %s\n", resp.Repository.URL)
	fmt.Fprintf(a.out, "  Organization: %s\n", resp.Repository.Organization)
	return resp, nil
}

// List prints registered repositories, one row each or one block each when detailed.
func (a *RepositoryAdapter) List(ctx context.Context, detailed bool) ([]*primary.Repository, error) {
	repos, err := a.service.ListRepositories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}

	if len(repos) == 0 {
		fmt.Fprintln(a.out, "No repositories registered.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Register your first repository:")
		fmt.Fprintln(a.out, "  contrack init --repo-url https://github.com/org/repo --org org --name repo")
		return repos, nil
	}

	if detailed {
		for _, r := range repos {
			fmt.Fprintf(a.out, "%s  %s\n", r.ID, r.Name)
			fmt.Fprintf(a.out, "  URL:          %s\n", r.URL)
			fmt.Fprintf(a.out, "  Organization: %s\n", r.Organization)
			fmt.Fprintf(a.out, "  Description:  %s\n", orDash(r.Description))
			fmt.Fprintf(a.out, "  Created:      %s\n", formatDate(r.CreatedAt))
			fmt.Fprintf(a.out, "  Updated:      %s\n", formatDate(r.UpdatedAt))
			fmt.Fprintln(a.out)
		}
		return repos, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tORGANIZATION\tURL")
	fmt.Fprintln(w, "--\t----\t------------\t---")
	for _, r := range repos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Organization, r.URL)
	}
	w.Flush()

	return repos, nil
}

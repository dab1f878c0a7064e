package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/contrack/internal/core/contribution"
	"github.com/example/contrack/internal/ports/primary"
	"github.com/example/contrack/internal/wire"
)

// AddCmd returns the add command
func AddCmd() *cobra.Command {
	var (
		req            primary.AddContributionRequest
		keyCommits     string
		relatedCommits string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a contribution",
		Long: `Record a named contribution backed by one or more key commits.

Priority runs 1-10 (higher is more important); values outside the range are
stored with a warning. Categories outside the usual set are accepted too.

Examples:
  contrack add -r https://github.com/acme/widgets -n "Auth" -o "Login flow" \
    -d "Session-based login with CSRF protection" -k abc1234,def5678
  contrack add -r https://github.com/acme/widgets -n "Billing" -o "Invoices" \
    -d "Monthly invoicing" -k 0a1b2c3 --related-commits 9f8e7d6 -c "Core Feature" -p 9`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.KeyCommits = contribution.ParseCommitList(keyCommits)
			req.RelatedCommits = contribution.ParseCommitList(relatedCommits)

			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				_, err := a.ContributionAdapter(cmd.OutOrStdout()).Add(ctx, req)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&req.RepositoryURL, "repo-url", "r", "", "Repository URL")
	cmd.Flags().StringVarP(&req.Name, "name", "n", "", "Contribution name (unique per repository)")
	cmd.Flags().StringVarP(&req.Overview, "overview", "o", "", "Brief overview")
	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "Detailed description")
	cmd.Flags().StringVarP(&keyCommits, "key-commits", "k", "", "Key commit hashes (comma-separated)")
	cmd.Flags().StringVar(&relatedCommits, "related-commits", "", "Related commit hashes (comma-separated)")
	cmd.Flags().StringVarP(&req.Category, "category", "c", "Feature", "Category (Core Feature, Integration, Infrastructure, ...)")
	cmd.Flags().IntVarP(&req.Priority, "priority", "p", 5, "Priority, 1-10 (higher is more important)")
	markRequired(cmd, "repo-url", "name", "overview", "description", "key-commits")

	return cmd
}

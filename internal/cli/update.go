package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/contrack/internal/ports/primary"
	"github.com/example/contrack/internal/wire"
)

// UpdateCmd returns the update command. Without a subcommand it synchronizes
// commit metadata from a local checkout.
func UpdateCmd() *cobra.Command {
	var req primary.SyncRequest

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Synchronize commit details from a git checkout",
		Long: `Resolve every commit hash referenced by a repository's contributions
against a local checkout and store author, date, message and diff stats.

Hashes that cannot be found are reported and skipped. Running it again
refreshes the stored commits without creating duplicates.

Examples:
  contrack update                      # checkout in the current directory, repository from origin
  contrack update -p ~/src/widgets -r https://github.com/acme/widgets`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				_, err := a.SyncAdapter(cmd.OutOrStdout()).Synchronize(ctx, req)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&req.CheckoutPath, "repo-path", "p", "", "Path to the git checkout (default: current directory)")
	cmd.Flags().StringVarP(&req.RepositoryURL, "repo-url", "r", "", "Repository URL (default: the checkout's origin remote)")

	cmd.AddCommand(updateContributionCmd())

	return cmd
}

func updateContributionCmd() *cobra.Command {
	var (
		repoURL, name                   string
		overview, description, category string
		keyCommits, relatedCommits      string
		priority                        int
	)

	cmd := &cobra.Command{
		Use:   "contribution",
		Short: "Change fields of a recorded contribution",
		Long: `Change selected fields of a contribution. Only flags given on the command
line are applied; everything else keeps its stored value.

Examples:
  contrack update contribution -r https://github.com/acme/widgets -n Auth -p 8
  contrack update contribution -r https://github.com/acme/widgets -n Auth --related-commits 1234abc,5678def`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := primary.UpdateContributionRequest{
				RepositoryURL:  repoURL,
				Name:           name,
				Overview:       changedString(cmd, "overview", overview),
				Description:    changedString(cmd, "description", description),
				KeyCommits:     changedCommits(cmd, "key-commits", keyCommits),
				RelatedCommits: changedCommits(cmd, "related-commits", relatedCommits),
				Category:       changedString(cmd, "category", category),
				Priority:       changedInt(cmd, "priority", priority),
			}

			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				_, err := a.ContributionAdapter(cmd.OutOrStdout()).Update(ctx, req)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&repoURL, "repo-url", "r", "", "Repository URL")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Contribution name")
	cmd.Flags().StringVarP(&overview, "overview", "o", "", "Brief overview")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Detailed description")
	cmd.Flags().StringVarP(&keyCommits, "key-commits", "k", "", "Key commit hashes (comma-separated)")
	cmd.Flags().StringVar(&relatedCommits, "related-commits", "", "Related commit hashes (comma-separated)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category")
	cmd.Flags().IntVarP(&priority, "priority", "p", 0, "Priority, 1-10")
	markRequired(cmd, "repo-url", "name")

	return cmd
}

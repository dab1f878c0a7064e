package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/contrack/internal/wire"
)

// QueryCmd returns the query command
func QueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query recorded contributions and commits",
	}

	cmd.AddCommand(queryContributionsCmd())
	cmd.AddCommand(queryContributionCmd())
	cmd.AddCommand(queryCommitsCmd())
	cmd.AddCommand(queryStatsCmd())

	return cmd
}

func queryContributionsCmd() *cobra.Command {
	var repoURL string

	cmd := &cobra.Command{
		Use:   "contributions [repo-url]",
		Short: "List a repository's contributions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := argOrFlag(args, 0, repoURL, "repo-url")
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				_, err := a.ContributionAdapter(cmd.OutOrStdout()).List(ctx, url)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&repoURL, "repo-url", "r", "", "Repository URL")
	return cmd
}

func queryContributionCmd() *cobra.Command {
	var repoURL, name string

	cmd := &cobra.Command{
		Use:   "contribution [repo-url] [name]",
		Short: "Show one contribution",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := argOrFlag(args, 0, repoURL, "repo-url")
			if err != nil {
				return err
			}
			n, err := argOrFlag(args, 1, name, "name")
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				_, err := a.ContributionAdapter(cmd.OutOrStdout()).Show(ctx, url, n)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&repoURL, "repo-url", "r", "", "Repository URL")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Contribution name")
	return cmd
}

func queryCommitsCmd() *cobra.Command {
	var repoURL, name string

	cmd := &cobra.Command{
		Use:   "commits [repo-url] [name]",
		Short: "Show the commits a contribution references",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := argOrFlag(args, 0, repoURL, "repo-url")
			if err != nil {
				return err
			}
			n, err := argOrFlag(args, 1, name, "name")
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				_, err := a.ContributionAdapter(cmd.OutOrStdout()).Commits(ctx, url, n)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&repoURL, "repo-url", "r", "", "Repository URL")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Contribution name")
	return cmd
}

func queryStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show database statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				_, err := a.StatsAdapter(cmd.OutOrStdout()).Show(ctx)
				return err
			})
		},
	}
}

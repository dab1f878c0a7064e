package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/contrack/internal/wire"
)

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	var repoURL, output, author string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the contributions markdown document",
		Long: `Render a repository's contributions as markdown, highest priority first.

With --author only contributions whose key commits include one by that
author are rendered (case-insensitive match on name or email). Use
--output - to write to standard output.

Examples:
  contrack generate -r https://github.com/acme/widgets
  contrack generate -r https://github.com/acme/widgets -o docs/CONTRIBUTIONS.md -a ada@example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				if !cmd.Flags().Changed("output") && a.Settings.DefaultOutput != "" {
					output = a.Settings.DefaultOutput
				}
				_, err := a.DocumentAdapter(cmd.OutOrStdout()).Generate(ctx, repoURL, author, output)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&repoURL, "repo-url", "r", "", "Repository URL")
	cmd.Flags().StringVarP(&output, "output", "o", "CONTRIBUTIONS.md", "Output file, or - for stdout")
	cmd.Flags().StringVarP(&author, "author", "a", "", "Only include contributions with a key commit by this author (name or email)")
	markRequired(cmd, "repo-url")

	return cmd
}

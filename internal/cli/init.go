package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/contrack/internal/ports/primary"
	"github.com/example/contrack/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var req primary.InitializeRepositoryRequest

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Register a repository",
		Long: `Register a repository by URL. The database is created on first use.

Examples:
  contrack init -r https://github.com/acme/widgets -o acme -n widgets
  contrack init --repo-url https://github.com/acme/widgets --org acme --name widgets -d "Widget service"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				_, err := a.RepositoryAdapter(cmd.OutOrStdout()).Init(ctx, req)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&req.URL, "repo-url", "r", "", "Repository URL (e.g., https://github.com/org/repo)")
	cmd.Flags().StringVarP(&req.Organization, "org", "o", "", "Organization name")
	cmd.Flags().StringVarP(&req.Name, "name", "n", "", "Repository name")
	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "Repository description")
	markRequired(cmd, "repo-url", "org", "name")

	return cmd
}

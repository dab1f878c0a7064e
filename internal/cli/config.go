package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/contrack/internal/ports/primary"
	"github.com/example/contrack/internal/wire"
)

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config.toml registry file",
		Long: `config.toml mirrors the registered organizations and repositories in a
hand-editable form. It lives next to the database (see 'contrack locations').`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "sync",
		Short: "Write the database's repositories to config.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				_, err := a.ConfigAdapter(cmd.OutOrStdout()).Sync(ctx)
				return err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "load",
		Short: "Register or refresh the repositories listed in config.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				_, err := a.ConfigAdapter(cmd.OutOrStdout()).Load(ctx)
				return err
			})
		},
	})

	cmd.AddCommand(configAddOrgCmd())
	cmd.AddCommand(configAddRepoCmd())

	return cmd
}

func configAddOrgCmd() *cobra.Command {
	var req primary.AddOrganizationRequest

	cmd := &cobra.Command{
		Use:   "add-org",
		Short: "Add an organization to config.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				return a.ConfigAdapter(cmd.OutOrStdout()).AddOrganization(ctx, req)
			})
		},
	}

	cmd.Flags().StringVarP(&req.ID, "id", "i", "", "Organization identifier (key in config.toml)")
	cmd.Flags().StringVarP(&req.Name, "name", "n", "", "Organization name")
	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "Organization description")
	markRequired(cmd, "id", "name")

	return cmd
}

func configAddRepoCmd() *cobra.Command {
	var req primary.InitializeRepositoryRequest

	cmd := &cobra.Command{
		Use:   "add-repo",
		Short: "Add a repository to config.toml",
		Long: `Add a repository entry to config.toml. Run 'contrack config load' to
register it in the database.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				return a.ConfigAdapter(cmd.OutOrStdout()).AddRepository(ctx, req)
			})
		},
	}

	cmd.Flags().StringVarP(&req.URL, "url", "u", "", "Repository URL")
	cmd.Flags().StringVarP(&req.Organization, "org", "o", "", "Organization identifier")
	cmd.Flags().StringVarP(&req.Name, "name", "n", "", "Repository name")
	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "Repository description")
	markRequired(cmd, "url", "org", "name")

	return cmd
}

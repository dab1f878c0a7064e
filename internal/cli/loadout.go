package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/contrack/internal/wire"
)

// LoadoutCmd returns the loadout command
func LoadoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loadout",
		Short: "Manage saved sets of agent rules and prompts",
		Long: `A loadout is a named YAML snapshot of the agent_rules and prompts tables.
Loading one replaces both tables.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved loadouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				_, err := a.LoadoutAdapter(cmd.OutOrStdout()).List(ctx)
				return err
			})
		},
	})

	cmd.AddCommand(loadoutNameCmd("create", "Create an empty loadout", func(ctx context.Context, a *wire.App, cmd *cobra.Command, name string) error {
		return a.LoadoutAdapter(cmd.OutOrStdout()).Create(ctx, name)
	}))
	cmd.AddCommand(loadoutNameCmd("load", "Replace the current rules and prompts with a loadout", func(ctx context.Context, a *wire.App, cmd *cobra.Command, name string) error {
		_, err := a.LoadoutAdapter(cmd.OutOrStdout()).Load(ctx, name)
		return err
	}))
	cmd.AddCommand(loadoutNameCmd("save", "Save the current rules and prompts to a loadout", func(ctx context.Context, a *wire.App, cmd *cobra.Command, name string) error {
		_, err := a.LoadoutAdapter(cmd.OutOrStdout()).Save(ctx, name)
		return err
	}))
	cmd.AddCommand(loadoutNameCmd("delete", "Delete a saved loadout", func(ctx context.Context, a *wire.App, cmd *cobra.Command, name string) error {
		return a.LoadoutAdapter(cmd.OutOrStdout()).Delete(ctx, name)
	}))

	cmd.AddCommand(&cobra.Command{
		Use:   "reload-default",
		Short: "Restore the built-in rules and prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				_, err := a.LoadoutAdapter(cmd.OutOrStdout()).ReloadDefault(ctx)
				return err
			})
		},
	})

	return cmd
}

func loadoutNameCmd(use, short string, run func(ctx context.Context, a *wire.App, cmd *cobra.Command, name string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				return run(ctx, a, cmd, args[0])
			})
		},
	}
}

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/contrack/internal/wire"
)

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				_, err := a.RepositoryAdapter(cmd.OutOrStdout()).List(ctx, detailed)
				return err
			})
		},
	}

	cmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "Show every field")
	return cmd
}

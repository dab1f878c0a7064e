package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/contrack/internal/wire"
)

// AICmd returns the ai command
func AICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ai",
		Short: "Print the agent guide for the current database",
		Long: `Print the agent rules and prompt templates as a block ready to paste into
an assistant, together with the database path it should read.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				return a.AgentAdapter(cmd.OutOrStdout()).Print(ctx)
			})
		},
	}
}

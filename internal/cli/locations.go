package cli

import (
	"github.com/spf13/cobra"

	cliadapter "github.com/example/contrack/internal/adapters/cli"
	"github.com/example/contrack/internal/config"
	apperrors "github.com/example/contrack/internal/errors"
)

// LocationsCmd returns the locations command. It does not open the database.
func LocationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "Show where the database, config file and loadouts live",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := invocationFrom(cmd.Context())
			override := inv.dbOverride
			if override == "" {
				override = inv.settings.DBPath
			}

			loc, err := config.ResolveLocations(inv.cwd, override)
			if err != nil {
				return apperrors.Wrap(apperrors.CodeConfigFailed, "failed to resolve locations", err)
			}
			cliadapter.PrintLocations(cmd.OutOrStdout(), loc)
			return nil
		},
	}
}

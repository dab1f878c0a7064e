// Package cli provides the cobra commands for contrack.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/contrack/internal/config"
	apperrors "github.com/example/contrack/internal/errors"
	"github.com/example/contrack/internal/logging"
	"github.com/example/contrack/internal/version"
)

// Global flags shared by every command.
type globalFlags struct {
	dbPath   string
	logLevel string
}

// RootCmd returns the contrack root command with every subcommand attached.
func RootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:     "contrack",
		Short:   "Track and document code contributions",
		Version: version.String(),
		Long: `contrack records notable contributions to a repository, pulls commit
metadata for them from a local git checkout and renders a markdown summary.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return bootstrap(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.dbPath, "db", "", "Database file (overrides settings and .contrack lookup)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(AddCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(GenerateCmd())
	cmd.AddCommand(QueryCmd())
	cmd.AddCommand(ListCmd())

	cmd.AddCommand(LocationsCmd())
	cmd.AddCommand(ConfigCmd())
	cmd.AddCommand(LoadoutCmd())
	cmd.AddCommand(AICmd())

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return invalidArguments(err)
	})
	codeArgValidators(cmd)

	return cmd
}

// Execute runs the root command with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := RootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "%s %v\n", color.New(color.FgRed).Sprint("Error:"), err)
		return apperrors.ExitCode(err)
	}
	return 0
}

// bootstrap loads settings, builds the logger and stores both in the command context.
func bootstrap(cmd *cobra.Command, flags *globalFlags) error {
	// cobra checks these after the persistent hooks; doing it here gives the error a code.
	if err := cmd.ValidateRequiredFlags(); err != nil {
		return invalidArguments(err)
	}
	if err := cmd.ValidateFlagGroups(); err != nil {
		return invalidArguments(err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return apperrors.Wrap(apperrors.CodeConfigFailed, "failed to determine working directory", err)
	}

	settings, err := config.LoadSettings(cwd)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeConfigFailed, "failed to load settings", err)
	}

	level := settings.LogLevel
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	logger := logging.NewLogger(cmd.ErrOrStderr(), logging.ParseLevel(level))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)
	ctx = withInvocation(ctx, &invocation{cwd: cwd, dbOverride: flags.dbPath, settings: settings})
	cmd.SetContext(ctx)
	return nil
}

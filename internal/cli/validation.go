package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/contrack/internal/core/contribution"
	apperrors "github.com/example/contrack/internal/errors"
)

// argOrFlag returns args[i] when present, else the flag value.
// Query subcommands accept the repository URL and name either way.
func argOrFlag(args []string, i int, flagValue, flagName string) (string, error) {
	value := flagValue
	if len(args) > i {
		value = args[i]
	}
	if strings.TrimSpace(value) == "" {
		return "", apperrors.InvalidInput("--%s is required", flagName)
	}
	return value, nil
}

// changedString returns a pointer to value when the flag was set on the command line.
func changedString(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

// changedCommits parses a comma-separated hash list when the flag was set.
func changedCommits(cmd *cobra.Command, name, value string) *contribution.CommitList {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	list := contribution.ParseCommitList(value)
	return &list
}

// changedInt returns a pointer to value when the flag was set on the command line.
func changedInt(cmd *cobra.Command, name string, value int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

// invalidArguments marks a cobra parse or validation error as invalid input.
func invalidArguments(err error) error {
	return apperrors.Wrap(apperrors.CodeInvalidInput, "invalid arguments", err)
}

// codeArgValidators wraps every positional argument check under cmd so its
// failures exit as invalid input.
func codeArgValidators(cmd *cobra.Command) {
	if validate := cmd.Args; validate != nil {
		cmd.Args = func(c *cobra.Command, args []string) error {
			if err := validate(c, args); err != nil {
				return invalidArguments(err)
			}
			return nil
		}
	}
	for _, sub := range cmd.Commands() {
		codeArgValidators(sub)
	}
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("unknown flag %q", name))
		}
	}
}

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/contrack/internal/config"
	"github.com/example/contrack/internal/logging"
	"github.com/example/contrack/internal/wire"
)

// invocation carries what PersistentPreRunE resolved for the running command.
type invocation struct {
	cwd        string
	dbOverride string
	settings   *config.Settings
}

type invocationKey struct{}

func withInvocation(ctx context.Context, inv *invocation) context.Context {
	return context.WithValue(ctx, invocationKey{}, inv)
}

func invocationFrom(ctx context.Context) *invocation {
	if inv, ok := ctx.Value(invocationKey{}).(*invocation); ok && inv != nil {
		return inv
	}
	return &invocation{cwd: ".", settings: config.DefaultSettings()}
}

// openApp opens the database for the running command. Callers must Close it.
func openApp(cmd *cobra.Command) (*wire.App, error) {
	ctx := cmd.Context()
	inv := invocationFrom(ctx)
	return wire.Open(ctx, wire.Options{
		Cwd:        inv.cwd,
		DBOverride: inv.dbOverride,
		Settings:   inv.settings,
		Logger:     logging.FromContext(ctx),
	})
}

// withApp opens the app, runs fn and closes the app.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *wire.App) error) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(cmd.Context(), a)
}

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/contrack/internal/ports/primary"
)

// LoadoutAdapter translates loadout subcommands to LoadoutService calls.
type LoadoutAdapter struct {
	service primary.LoadoutService
	out     io.Writer
}

// NewLoadoutAdapter creates a new LoadoutAdapter with the given service.
func NewLoadoutAdapter(service primary.LoadoutService, out io.Writer) *LoadoutAdapter {
	return &LoadoutAdapter{service: service, out: out}
}

// List prints saved loadout names.
func (a *LoadoutAdapter) List(ctx context.Context) ([]string, error) {
	names, err := a.service.ListLoadouts(ctx)
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		fmt.Fprintln(a.out, "No loadouts saved.")
		fmt.Fprintln(a.out, "  contrack loadout save <name>   snapshot the current rules and prompts")
		return names, nil
	}
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", name)
	}
	return names, nil
}

// Create saves an empty loadout.
func (a *LoadoutAdapter) Create(ctx context.Context, name string) error {
	if err := a.service.CreateLoadout(ctx, name); err != nil {
		return err
	}
	success(a.out, "Created empty loadout %s", name)
	return nil
}

// Load applies a saved loadout.
func (a *LoadoutAdapter) Load(ctx context.Context, name string) (*primary.LoadoutSummary, error) {
	summary, err := a.service.LoadLoadout(ctx, name)
	if err != nil {
		return nil, err
	}
	success(a.out, "Loaded %s: %d rules, %d prompts", summary.Name, summary.Rules, summary.Prompts)
	return summary, nil
}

// Save snapshots the current rules and prompts.
func (a *LoadoutAdapter) Save(ctx context.Context, name string) (*primary.LoadoutSummary, error) {
	summary, err := a.service.SaveLoadout(ctx, name)
	if err != nil {
		return nil, err
	}
	success(a.out, "Saved %s: %d rules, %d prompts", summary.Name, summary.Rules, summary.Prompts)
	return summary, nil
}

// Delete removes a saved loadout.
func (a *LoadoutAdapter) Delete(ctx context.Context, name string) error {
	if err := a.service.DeleteLoadout(ctx, name); err != nil {
		return err
	}
	success(a.out, "Deleted loadout %s", name)
	return nil
}

// ReloadDefault restores the built-in rules and prompts.
func (a *LoadoutAdapter) ReloadDefault(ctx context.Context) (*primary.LoadoutSummary, error) {
	summary, err := a.service.ReloadDefault(ctx)
	if err != nil {
		return nil, err
	}
	success(a.out, "Restored default loadout: %d rules, %d prompts", summary.Rules, summary.Prompts)
	return summary, nil
}

package primary

import "context"

// LoadoutService defines the primary port for loadout management.
type LoadoutService interface {
	// ListLoadouts returns saved loadout names.
	ListLoadouts(ctx context.Context) ([]string, error)

	// CreateLoadout saves a new empty loadout. Fails if it exists.
	CreateLoadout(ctx context.Context, name string) error

	// LoadLoadout replaces the current rules and prompts with a saved loadout.
	LoadLoadout(ctx context.Context, name string) (*LoadoutSummary, error)

	// SaveLoadout writes the current rules and prompts to a loadout.
	SaveLoadout(ctx context.Context, name string) (*LoadoutSummary, error)

	// DeleteLoadout removes a saved loadout.
	DeleteLoadout(ctx context.Context, name string) error

	// ReloadDefault restores the built-in rules and prompts.
	ReloadDefault(ctx context.Context) (*LoadoutSummary, error)
}

// LoadoutSummary describes a loadout that was applied or written.
type LoadoutSummary struct {
	Name    string
	Rules   int
	Prompts int
}

package secondary

import (
	"context"

	"github.com/example/contrack/internal/core/loadout"
)

// LoadoutStore defines the secondary port for saved loadouts.
type LoadoutStore interface {
	// List returns the names of saved loadouts in lexical order.
	List(ctx context.Context) ([]string, error)

	// Get reads a saved loadout. Returns nil, nil when it does not exist.
	Get(ctx context.Context, name string) (*loadout.Loadout, error)

	// Save writes a loadout, replacing any file with the same name.
	Save(ctx context.Context, l *loadout.Loadout) error

	// Delete removes a saved loadout.
	Delete(ctx context.Context, name string) error
}

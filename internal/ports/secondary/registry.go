package secondary

import (
	"context"

	"github.com/example/contrack/internal/config"
)

// RegistryFileStore defines the secondary port for the config.toml registry file.
type RegistryFileStore interface {
	// Path returns the location of the registry file.
	Path() string

	// Load reads the registry file. A missing file yields an empty registry.
	Load(ctx context.Context) (*config.RegistryFile, error)

	// Save writes the registry file.
	Save(ctx context.Context, registry *config.RegistryFile) error
}

package filesystem

import (
	"context"

	"github.com/example/contrack/internal/config"
	"github.com/example/contrack/internal/ports/secondary"
)

// RegistryFileStore implements secondary.RegistryFileStore on top of config.toml.
type RegistryFileStore struct {
	path string
}

// NewRegistryFileStore creates a store for the registry file at path.
func NewRegistryFileStore(path string) *RegistryFileStore {
	return &RegistryFileStore{path: path}
}

// Path returns the location of the registry file.
func (s *RegistryFileStore) Path() string {
	return s.path
}

// Load reads the registry file. A missing file yields an empty registry.
func (s *RegistryFileStore) Load(ctx context.Context) (*config.RegistryFile, error) {
	return config.LoadRegistryFile(s.path)
}

// Save writes the registry file.
func (s *RegistryFileStore) Save(ctx context.Context, registry *config.RegistryFile) error {
	return registry.Save(s.path)
}

var _ secondary.RegistryFileStore = (*RegistryFileStore)(nil)

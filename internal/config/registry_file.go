package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Organization is an organization entry in config.toml.
type Organization struct {
	Name        string `toml:"name"`
	Description string `toml:"description,omitempty"`
}

// RepositoryEntry is a repository entry in config.toml, keyed by URL.
type RepositoryEntry struct {
	Organization string `toml:"organization"`
	Name         string `toml:"name"`
	Description  string `toml:"description,omitempty"`
}

// RegistryFile is the hand-editable mirror of the repositories table.
type RegistryFile struct {
	Organizations map[string]Organization    `toml:"organizations"`
	Repositories  map[string]RepositoryEntry `toml:"repositories"`
}

// NewRegistryFile returns an empty registry.
func NewRegistryFile() *RegistryFile {
	return &RegistryFile{
		Organizations: make(map[string]Organization),
		Repositories:  make(map[string]RepositoryEntry),
	}
}

// LoadRegistryFile reads config.toml. A missing file yields an empty registry.
func LoadRegistryFile(path string) (*RegistryFile, error) {
	reg := NewRegistryFile()

	if _, err := toml.DecodeFile(path, reg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewRegistryFile(), nil
		}
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if reg.Organizations == nil {
		reg.Organizations = make(map[string]Organization)
	}
	if reg.Repositories == nil {
		reg.Repositories = make(map[string]RepositoryEntry)
	}
	return reg, nil
}

// Save writes the registry to path, creating the parent directory.
func (r *RegistryFile) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(r); err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	return nil
}

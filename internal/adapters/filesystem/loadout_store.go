// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/contrack/internal/core/loadout"
	"github.com/example/contrack/internal/ports/secondary"
)

const loadoutExt = ".yaml"

// LoadoutStore implements secondary.LoadoutStore with one YAML file per loadout.
type LoadoutStore struct {
	dir string
}

// NewLoadoutStore creates a store rooted at dir. The directory is created on first save.
func NewLoadoutStore(dir string) *LoadoutStore {
	return &LoadoutStore{dir: dir}
}

// Dir returns the directory holding loadout files.
func (s *LoadoutStore) Dir() string {
	return s.dir
}

// List returns the names of saved loadouts in lexical order.
func (s *LoadoutStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read loadout directory: %w", err)
	}

	names := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), loadoutExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), loadoutExt))
	}
	sort.Strings(names)
	return names, nil
}

// Get reads a saved loadout. Returns nil, nil when it does not exist.
func (s *LoadoutStore) Get(ctx context.Context, name string) (*loadout.Loadout, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read loadout %s: %w", name, err)
	}

	var l loadout.Loadout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse loadout %s: %w", path, err)
	}
	l.Name = name
	return &l, nil
}

// Save writes a loadout, replacing any file with the same name.
func (s *LoadoutStore) Save(ctx context.Context, l *loadout.Loadout) error {
	path, err := s.path(l.Name)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to serialize loadout %s: %w", l.Name, err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create loadout directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write loadout %s: %w", l.Name, err)
	}
	return nil
}

// Delete removes a saved loadout.
func (s *LoadoutStore) Delete(ctx context.Context, name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete loadout %s: %w", name, err)
	}
	return nil
}

func (s *LoadoutStore) path(name string) (string, error) {
	if err := loadout.ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name+loadoutExt), nil
}

var _ secondary.LoadoutStore = (*LoadoutStore)(nil)

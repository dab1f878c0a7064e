package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DirName is the project-local data directory searched for from the cwd upward.
	DirName = ".contrack"
	// AppName names the per-user application data directory.
	AppName = "contrack"
	// DatabaseFile is the deterministic name of the embedded database.
	DatabaseFile = "contributions.db"
	// RegistryFileName is the organizations/repositories file kept next to the database.
	RegistryFileName = "config.toml"
	// LoadoutDirName holds saved rule/prompt loadouts under the data directory.
	LoadoutDirName = "loadouts"
)

// Location sources, reported by `contrack locations`.
const (
	SourceOverride = "override"
	SourceProject  = "project"
	SourceAppData  = "app-data"
)

// Locations describes where contrack keeps its state for the current invocation.
type Locations struct {
	ProjectDir string // nearest .contrack directory, empty if none
	AppDir     string // per-user application data directory
	DataDir    string // directory holding the database, registry file and loadouts
	Database   string // full path of the database file
	Source     string // which rule picked Database
}

// RegistryPath returns the config.toml path next to the database.
func (l *Locations) RegistryPath() string {
	return filepath.Join(l.DataDir, RegistryFileName)
}

// LoadoutDir returns the directory holding loadout files.
func (l *Locations) LoadoutDir() string {
	return filepath.Join(l.DataDir, LoadoutDirName)
}

// FindProjectDir walks up from start looking for a .contrack directory.
func FindProjectDir(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, DirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// AppDataDir returns the platform application data directory for contrack.
func AppDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine application data directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// ResolveLocations picks the database path.
// Resolution order: explicit override, nearest .contrack directory, app data directory.
func ResolveLocations(cwd, override string) (*Locations, error) {
	loc := &Locations{}

	if dir, ok := FindProjectDir(cwd); ok {
		loc.ProjectDir = dir
	}
	if dir, err := AppDataDir(); err == nil {
		loc.AppDir = dir
	}

	switch {
	case override != "":
		abs, err := filepath.Abs(override)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve database path %s: %w", override, err)
		}
		loc.Database = abs
		loc.DataDir = filepath.Dir(abs)
		loc.Source = SourceOverride
	case loc.ProjectDir != "":
		loc.DataDir = loc.ProjectDir
		loc.Database = filepath.Join(loc.ProjectDir, DatabaseFile)
		loc.Source = SourceProject
	case loc.AppDir != "":
		loc.DataDir = loc.AppDir
		loc.Database = filepath.Join(loc.AppDir, DatabaseFile)
		loc.Source = SourceAppData
	default:
		return nil, fmt.Errorf("failed to determine a database location: no %s directory and no application data directory", DirName)
	}

	return loc, nil
}

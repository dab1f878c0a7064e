// Package config resolves where contrack keeps its state and loads the
// optional settings and registry files.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Settings holds tunables read from settings.toml and CONTRACK_* env vars.
type Settings struct {
	DBPath        string `mapstructure:"db_path"`
	DBDriver      string `mapstructure:"db_driver"`
	LogLevel      string `mapstructure:"log_level"`
	DefaultOutput string `mapstructure:"default_output"`
}

// Supported database drivers.
const (
	DriverCGO    = "sqlite3" // mattn/go-sqlite3
	DriverPureGo = "sqlite"  // modernc.org/sqlite
)

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() *Settings {
	return &Settings{
		DBDriver:      DriverCGO,
		LogLevel:      "warn",
		DefaultOutput: "CONTRIBUTIONS.md",
	}
}

// LoadSettings reads settings.toml from the nearest .contrack directory or the
// app data directory, then applies CONTRACK_* environment overrides.
// A missing settings file is not an error.
func LoadSettings(cwd string) (*Settings, error) {
	defaults := DefaultSettings()

	v := viper.New()
	v.SetDefault("db_path", defaults.DBPath)
	v.SetDefault("db_driver", defaults.DBDriver)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("default_output", defaults.DefaultOutput)

	v.SetConfigName("settings")
	v.SetConfigType("toml")
	if dir, ok := FindProjectDir(cwd); ok {
		v.AddConfigPath(dir)
	}
	if dir, err := AppDataDir(); err == nil {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix("CONTRACK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the settings values.
func (s *Settings) Validate() error {
	switch s.DBDriver {
	case DriverCGO, DriverPureGo:
	default:
		return &SettingsError{Field: "db_driver", Message: fmt.Sprintf("unsupported driver %q (use %q or %q)", s.DBDriver, DriverCGO, DriverPureGo)}
	}
	return nil
}

// SettingsError represents an invalid settings value.
type SettingsError struct {
	Field   string
	Message string
}

func (e *SettingsError) Error() string {
	return "settings error in field '" + e.Field + "': " + e.Message
}

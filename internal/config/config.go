package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of the alarm-map binary.
type Config struct {
	// StateFile is the path to the JSON file storing the global configuration.
	StateFile string `yaml:"state_file" env:"STATE_FILE"`
	// CatalogFile is the path to the SQLite database of categories and points of interest.
	CatalogFile string `yaml:"catalog_file" env:"CATALOG_FILE"`
	// LogLevel is the minimum level of log messages (debug, info, warn, error).
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "alarm-map-settings.yaml"

	// DefaultStateFilename is the default filename for the global configuration JSON.
	DefaultStateFilename = "alarm-map-global.json"

	// DefaultCatalogFilename is the default filename for the catalog database.
	DefaultCatalogFilename = "alarm-map-catalog.db"

	// DefaultLogLevel is the default minimum log level.
	DefaultLogLevel = "info"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "ALARM_MAP_"

	// DefaultFilePermissions is the default file permission for files written by the binary.
	DefaultFilePermissions = 0o600

	// DefaultDirPermissions is the default permission for directories created by the binary.
	DefaultDirPermissions = 0o700
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownLogLevel is returned for log levels outside the supported set.
	errUnknownLogLevel = errors.New("unknown log level")
	// errSamePaths is returned when the state file and catalog share a path.
	errSamePaths = errors.New("state file and catalog file must differ")
)

// Default returns settings holding every default.
func Default() *Config {
	return &Config{
		StateFile:   DefaultStateFilename,
		CatalogFile: DefaultCatalogFilename,
		LogLevel:    DefaultLogLevel,
	}
}

// Load reads configuration from the provided path, applies environment
// overrides and validates the result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	var cfg Config

	contents, err := os.ReadFile(filepath.Clean(path))

	switch {
	case err == nil:
		if err = yaml.Unmarshal(contents, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Keep defaults.
	default:
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err = ApplyEnv(&cfg); err != nil {
		return nil, err
	}

	if err = Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyEnv overrides settings with ALARM_MAP_* environment variables.
func ApplyEnv(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Save writes Settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills in defaults for empty fields.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	// Set default state file if not specified
	if settings.StateFile == "" {
		settings.StateFile = DefaultStateFilename
	}

	// Set default catalog file if not specified
	if settings.CatalogFile == "" {
		settings.CatalogFile = DefaultCatalogFilename
	}

	if filepath.Clean(settings.StateFile) == filepath.Clean(settings.CatalogFile) {
		return errSamePaths
	}

	settings.LogLevel = strings.ToLower(strings.TrimSpace(settings.LogLevel))
	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	switch settings.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownLogLevel, settings.LogLevel)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks defaults and format validations for Settings.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	// Empty settings get defaults.
	settings := new(Config)
	require.NoError(t, Validate(settings))
	require.Equal(t, Default(), settings)

	// Bad log level.
	settings = &Config{LogLevel: "loud"}
	require.Error(t, Validate(settings))

	// Level is normalised.
	settings = &Config{LogLevel: " DEBUG "}
	require.NoError(t, Validate(settings))
	require.Equal(t, "debug", settings.LogLevel)

	// Both stores on one file.
	settings = &Config{StateFile: "x.db", CatalogFile: "./x.db"}
	require.Error(t, Validate(settings))
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	settings := &Config{
		StateFile:   filepath.Join(dir, "global.json"),
		CatalogFile: filepath.Join(dir, "catalog.db"),
		LogLevel:    "warn",
	}

	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, settings, loaded)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestLoadMissingFile checks that a missing settings file yields the defaults.
func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	loaded, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), loaded)
}

// TestLoadEnvOverrides checks that environment variables win over the file.
func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	require.NoError(t, Save(path, &Config{LogLevel: "info"}))

	t.Setenv("ALARM_MAP_CATALOG_FILE", filepath.Join(dir, "env.db"))
	t.Setenv("ALARM_MAP_LOG_LEVEL", "error")

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "env.db"), loaded.CatalogFile)
	require.Equal(t, "error", loaded.LogLevel)
	require.Equal(t, DefaultStateFilename, loaded.StateFile)
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poliscope/stancetrack/internal/setup/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

// The shipped files must round-trip through LoadConfig, otherwise every
// binary aborts at startup. Search paths are relative, so run from the
// repository root where the config directory lives.
func TestLoadConfigShippedFiles(t *testing.T) {
	t.Chdir("../../..")

	cfg, _, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.CurrentCommonVersion, cfg.Common.Version)
	assert.Equal(t, "info", cfg.Common.Debug.LogLevel)
	assert.Equal(t, "127.0.0.1", cfg.Common.PostgreSQL.Host)
	assert.Equal(t, 5432, cfg.Common.PostgreSQL.Port)
	assert.Equal(t, "stancetrack", cfg.Common.PostgreSQL.DBName)
	assert.Equal(t, 16, cfg.Common.PostgreSQL.MaxOpenConns)
	assert.Equal(t, "127.0.0.1", cfg.Common.Redis.Host)
	assert.Equal(t, 6379, cfg.Common.Redis.Port)

	assert.Equal(t, config.CurrentWorkerVersion, cfg.Worker.Version)
	assert.Equal(t, 50, cfg.Worker.BatchSize)
	assert.Equal(t, 2000, cfg.Worker.PollInterval)
	assert.Equal(t, 4, cfg.Worker.Concurrency)
}

func TestLoadConfigMissingVersion(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "common.toml", "[common]\nversion = 1\n")
	writeConfigFile(t, dir, "worker.toml", "[worker]\nbatch_size = 50\n")
	t.Chdir(dir)

	_, _, err := config.LoadConfig()
	require.ErrorIs(t, err, config.ErrConfigVersionMissing)
}

func TestLoadConfigVersionMismatch(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "common.toml", "[common]\nversion = 99\n")
	writeConfigFile(t, dir, "worker.toml", "[worker]\nversion = 1\n")
	t.Chdir(dir)

	_, _, err := config.LoadConfig()
	require.ErrorIs(t, err, config.ErrConfigVersionMismatch)
}

func TestLoadConfigFileNotFound(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := config.LoadConfig()
	require.ErrorIs(t, err, config.ErrConfigFileNotFound)
}

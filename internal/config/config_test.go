package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CURSOR_RECAP_CONFIG_PATH", "")
	t.Setenv("CURSOR_RECAP_DB_PATH", "")
	t.Setenv("CURSOR_RECAP_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Contains(t, cfg.Store.Path, "state.vscdb")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CURSOR_RECAP_CONFIG_PATH", "")
	t.Setenv("CURSOR_RECAP_DB_PATH", "/tmp/other.vscdb")
	t.Setenv("CURSOR_RECAP_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.vscdb", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "store:\n  path: /data/state.vscdb\nlog:\n  level: warn\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("CURSOR_RECAP_CONFIG_PATH", path)
	t.Setenv("CURSOR_RECAP_DB_PATH", "")
	t.Setenv("CURSOR_RECAP_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/state.vscdb", cfg.Store.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Setenv("CURSOR_RECAP_CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

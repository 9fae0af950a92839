package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "stdio", cfg.Transport.Mode)
	require.Equal(t, "hrboard.db", cfg.DB.Path)
	require.Equal(t, "hr-updates", cfg.Tracker.StorageKey)
	require.Equal(t, 300, cfg.Tracker.DebounceMS)
	require.Equal(t, 10, cfg.Tracker.HistoryLimit)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HRBOARD_TRANSPORT_MODE", "http")
	t.Setenv("HRBOARD_SERVER_PORT", "9999")
	t.Setenv("HRBOARD_DB_PATH", "/tmp/test.db")
	t.Setenv("HRBOARD_STORAGE_KEY", "alt-key")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http", cfg.Transport.Mode)
	require.Equal(t, 9999, cfg.Server.Port)
	require.Equal(t, "/tmp/test.db", cfg.DB.Path)
	require.Equal(t, "alt-key", cfg.Tracker.StorageKey)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("transport:\n  mode: http\ntracker:\n  debounce_ms: 50\n  history_limit: 5\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	t.Setenv("HRBOARD_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http", cfg.Transport.Mode)
	require.Equal(t, 50, cfg.Tracker.DebounceMS)
	require.Equal(t, 5, cfg.Tracker.HistoryLimit)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("HRBOARD_SERVER_PORT", "not-a-port")
	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidTransportMode(t *testing.T) {
	t.Setenv("HRBOARD_TRANSPORT_MODE", "carrier-pigeon")
	_, err := Load()
	require.Error(t, err)
}

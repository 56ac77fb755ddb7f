package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", false)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "plain", cfg.Display.Style)
	assert.Equal(t, 100, cfg.Display.DelayMS)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad_MissingDefaultPathIsFine(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_MissingExplicitPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), true)
	require.Error(t, err)
}

func TestLoad_OverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palintape.yaml")
	content := `
log:
  level: debug
server:
  addr: ":9999"
redis:
  addr: "localhost:6379"
  ttl_seconds: 60
display:
  style: neon
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 60, cfg.Redis.TTLSeconds)
	assert.Equal(t, "neon", cfg.Display.Style)
	// Untouched keys keep their defaults.
	assert.Equal(t, 100, cfg.Display.DelayMS)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palintape.yaml")
	require.NoError(t, os.WriteFile(path, []byte("serverr:\n  addr: ':1'\n"), 0o644))

	_, err := Load(path, true)
	require.Error(t, err)
}

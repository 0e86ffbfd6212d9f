package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON(t *testing.T) {
	dir := t.TempDir()

	t.Run("overlays present fields only", func(t *testing.T) {
		path := writeTempJSON(t, dir, "partial.json", map[string]any{
			"backend_url":     "https://crm.example.com/api/v1",
			"request_timeout": "10s",
			"log_backend":     "zap",
		})

		cfg := &Config{DatabasePath: "keep.db", SessionCheckInterval: 42 * time.Second}
		require.NoError(t, parseJSON(cfg, path))

		assert.Equal(t, "https://crm.example.com/api/v1", cfg.BackendURL)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "zap", cfg.LogBackend)
		assert.Equal(t, "keep.db", cfg.DatabasePath)
		assert.Equal(t, 42*time.Second, cfg.SessionCheckInterval)
	})

	t.Run("empty path → no changes", func(t *testing.T) {
		cfg := &Config{BackendURL: "defaults"}
		require.NoError(t, parseJSON(cfg, ""))
		assert.Equal(t, "defaults", cfg.BackendURL)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Error(t, parseJSON(&Config{}, bad))
	})

	t.Run("missing file → error", func(t *testing.T) {
		require.Error(t, parseJSON(&Config{}, filepath.Join(dir, "nope.json")))
	})
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tayloree/pantry/internal/config"
)

// isolate runs the test from an empty directory with no PANTRY_* overrides
// inherited from the caller's environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, name := range []string{
		config.PathEnvVar, "PANTRY_STORE_URL", "PANTRY_STORE_TOKEN", "PANTRY_STORE_TIMEOUT",
		"PANTRY_RECOMMEND_LIMIT", "PANTRY_LOG_LEVEL", "PANTRY_LOG_FORMAT",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
store:
  url: https://store.example.com/api/
  timeout: 30s
recommend:
  limit: 8
log:
  level: info
`), 0o600))

	t.Setenv("PANTRY_RECOMMEND_LIMIT", "3")
	t.Setenv("PANTRY_STORE_TOKEN", "secret")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://store.example.com/api", cfg.Store.URL)
	assert.Equal(t, 30*time.Second, cfg.Store.Timeout)
	assert.Equal(t, "secret", cfg.Store.Token)
	assert.Equal(t, 3, cfg.Recommend.Limit)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_DefaultFileInWorkingDir(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pantry.yaml"), []byte("log:\n  format: json\n"), 0o600))

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_PathFromEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "elsewhere.yml")
	require.NoError(t, os.WriteFile(path, []byte("recommend:\n  limit: 9\n"), 0o600))
	t.Setenv(config.PathEnvVar, path)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Recommend.Limit)
}

func TestLoad_Errors(t *testing.T) {
	dir := isolate(t)

	_, err := config.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("PANTRY_RECOMMEND_LIMIT", "0")
	_, err = config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Limit must be greater than or equal to 1")

	t.Setenv("PANTRY_RECOMMEND_LIMIT", "5")
	t.Setenv("PANTRY_STORE_URL", "not a url")
	_, err = config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "URL must be an http or https URL")
}

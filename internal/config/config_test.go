package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "API_PORT", "DATABASE_URL", "CORS_ORIGINS", "RATE_LIMIT_PER_MIN", "APP_NAME"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite:///./tickets.db", cfg.DBURL)
	assert.Equal(t, "Smart API", cfg.AppName)
	assert.Equal(t, []string{"*"}, cfg.Origins)
	assert.Equal(t, 200, cfg.RateLimit)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/tickets")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("RATE_LIMIT_PER_MIN", "0")
	t.Setenv("APP_ENV", "prod")

	cfg := Load()
	assert.Equal(t, "postgres://u:p@db:5432/tickets", cfg.DBURL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Origins)
	assert.Equal(t, 0, cfg.RateLimit)
	assert.Equal(t, "prod", cfg.Env)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_VERSION=9.9.9\nAPI_PORT=9000\n"), 0o600))

	// already set wins over the file
	t.Setenv("API_PORT", "7000")
	t.Setenv("APP_VERSION", "")
	require.NoError(t, os.Unsetenv("APP_VERSION"))

	require.NoError(t, LoadEnvFile(path))
	t.Cleanup(func() { _ = os.Unsetenv("APP_VERSION") })

	cfg := Load()
	assert.Equal(t, "9.9.9", cfg.AppVersion)
	assert.Equal(t, "7000", cfg.Port)

	require.NoError(t, LoadEnvFile(filepath.Join(dir, "missing.env")))
	require.NoError(t, LoadEnvFile(""))
}

func TestGetIsCached(t *testing.T) {
	first := Get()
	t.Setenv("APP_NAME", "changed-after-first-get")
	assert.Equal(t, first, Get())
}

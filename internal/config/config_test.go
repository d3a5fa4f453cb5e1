package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "5005", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "hirequest", cfg.Database.DBName)
	assert.Equal(t, 168*time.Hour, cfg.TokenExpiration())
	assert.Equal(t, 5*time.Second, cfg.StatusSheetTimeout())
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_MissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: "8080"
  mode: production
jwt:
  token_expiration: 24h
status_sheet:
  url: https://sheets.example.com/exec
  timeout: 2s
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, 24*time.Hour, cfg.TokenExpiration())
	assert.Equal(t, "https://sheets.example.com/exec", cfg.StatusSheet.URL)
	assert.Equal(t, 2*time.Second, cfg.StatusSheetTimeout())
}

func TestLoadConfig_EnvOverridesYAML(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_NAME", "hirequest_test")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"8080\"\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "hirequest_test", cfg.Database.DBName)
}

func TestLoadConfig_InvalidTokenExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TOKEN_EXPIRATION", "one-week")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.User = "hirequest"
	cfg.Database.Password = "pw"
	cfg.Database.DBName = "hirequest"

	assert.Equal(t,
		"postgres://hirequest:pw@db.internal:5433/hirequest?sslmode=disable",
		cfg.GetPostgresConnectionString(),
	)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
  port: 5432
  user: mercado
  password: secret
  dbname: mercado
api:
  base_url: https://api.example/v1
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "disable", cfg.Database.SSLMode)
	require.Equal(t, 50, cfg.API.PageSize)
	require.Equal(t, 30*time.Second, cfg.API.Timeout)
	require.Equal(t, 3, cfg.API.Retry.MaxAttempts)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 0, cfg.Extract.MaxPages)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "hunter2")

	path := writeConfig(t, `
database:
  host: ${DB_HOST}
  port: ${DB_PORT}
  user: ${DB_USER}
  password: ${DB_PASSWORD}
  dbname: mercado
api:
  base_url: https://api.example/v1
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "db.internal", cfg.Database.Host)
	require.Equal(t, 5433, cfg.Database.Port)
	require.Equal(t, "svc", cfg.Database.User)
	require.Equal(t,
		"host=db.internal port=5433 user=svc password=hunter2 dbname=mercado sslmode=disable",
		cfg.Database.DSN(),
	)
}

func TestLoad_MissingBaseURLFailsValidation(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
  port: 5432
  user: mercado
  dbname: mercado
api:
  page_size: 10
`)

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "validate config")
}

func TestLoad_InvalidLogLevelFailsValidation(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
  port: 5432
  user: mercado
  dbname: mercado
api:
  base_url: https://api.example/v1
log_level: verbose
`)

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "validate config")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

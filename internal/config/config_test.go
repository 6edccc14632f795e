package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
server:
  host: "0.0.0.0"
  port: 8080
database:
  host: "localhost"
  port: 5432
  user: "autonom"
  database: "autonom_test"
  ssl_mode: "disable"
jwt:
  secret: "test-secret-test-secret-test-secret-1234"
storage:
  upload_dir: "./uploads"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, 480, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, int64(5), cfg.Storage.MaxFileSizeMB)
	assert.Equal(t, []string{"application/pdf", "image/jpeg", "image/png"}, cfg.Storage.AllowedTypes)
	assert.Equal(t, 24, cfg.Alerts.ExpiringWithinHours)
	assert.Equal(t, 7, cfg.Alerts.OverdueAfterDays)
	assert.Equal(t, "@every 5m", cfg.Scheduler.CheckExpiringReservations)
	assert.Equal(t, "@every 5m", cfg.Scheduler.CheckOverduePayments)
	assert.Equal(t, "AUTONOM Închirieri Auto SRL", cfg.Company.Name)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_SECRET", "env-secret-env-secret-env-secret-5678")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "env-secret-env-secret-env-secret-5678", cfg.JWT.Secret)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_RejectsShortSecret(t *testing.T) {
	bad := `
server:
  port: 8080
database:
  host: "localhost"
  user: "autonom"
  database: "autonom_test"
jwt:
  secret: "short"
storage:
  upload_dir: "./uploads"
`
	_, err := Load(writeConfig(t, bad))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 characters")
}

func TestGetDatabaseConnectionString(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalYAML))
	require.NoError(t, err)
	assert.Contains(t, cfg.GetDatabaseConnectionString(), "postgres://autonom:@localhost:5432/autonom_test?sslmode=disable")
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
}

package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_SESSION_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, StoragePostgres, cfg.Database.Storage)
	assert.True(t, cfg.Database.Migrate)
	assert.Equal(t, "jokester_session", cfg.Session.CookieName)
	assert.Equal(t, 720*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FlatVariableNames(t *testing.T) {
	t.Setenv("APP_SESSION_SECRET", testSecret)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_DB_NAME", "jokes_test")
	t.Setenv("APP_STORAGE", "memory")
	t.Setenv("APP_SESSION_TTL", "1h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "jokes_test", cfg.Database.Name)
	assert.Equal(t, StorageMemory, cfg.Database.Storage)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("APP_SESSION_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database: DatabaseConfig{Storage: StoragePostgres},
			Session:  SessionConfig{Secret: testSecret, TTL: time.Hour},
		}
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Database.Storage = "sqlite"
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "APP_STORAGE"))

	cfg = valid()
	cfg.Session.Secret = "short"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Session.TTL = 0
	assert.Error(t, cfg.Validate())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{User: "u", Password: "p", Host: "db", Port: 5433, Name: "jokes", SSLMode: "require"}
	assert.Equal(t, "postgres://u:p@db:5433/jokes?sslmode=require", c.DSN())
}

package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/trivia")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.True(t, cfg.Database.UniqueClueValues)
	assert.False(t, cfg.Database.ResetOnStart)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Auth.GateMutations)
	assert.False(t, cfg.RandomClues)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("ADMIN_GATE_MUTATIONS", "true")
	t.Setenv("RANDOM_CLUES", "1")
	t.Setenv("TOKEN_TTL", "5m")
	t.Setenv("ADMIN_USERNAME", "host")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.True(t, cfg.Auth.GateMutations)
	assert.True(t, cfg.RandomClues)
	assert.Equal(t, 5*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "host", cfg.Auth.AdminUsername)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("RANDOM_CLUES", "sometimes")
	t.Setenv("ADMIN_USERNAME", "host")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
	assert.Contains(t, err.Error(), "RANDOM_CLUES")
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "ADMIN_PASSWORD")
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "")
	t.Setenv("MIGRATIONS_PATH", "")
	t.Setenv("IS_PRODUCTION", "not-a-bool")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.False(t, cfg.IsProduction)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://u:p@localhost:5432/biz")
	t.Setenv("MIGRATIONS_PATH", "file:///srv/migrations")
	t.Setenv("IS_PRODUCTION", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@localhost:5432/biz", cfg.DatabaseURL)
	assert.Equal(t, "file:///srv/migrations", cfg.MigrationsPath)
	assert.True(t, cfg.IsProduction)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "memory", cfg.Store.Normalized())
	assert.False(t, cfg.Store.Seed)
	assert.Equal(t, int32(4), cfg.Psql.MaxConns)
	assert.Equal(t, int32(0), cfg.Psql.MinConns)
	assert.False(t, cfg.Psql.RunMigrations)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_BACKEND", "Postgres")
	t.Setenv("STORE_SEED", "true")
	t.Setenv("PSQL_MAX_CONNS", "16")
	t.Setenv("PSQL_MIN_CONNS", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, "postgres", cfg.Store.Normalized())
	assert.True(t, cfg.Store.Seed)
	assert.Equal(t, int32(16), cfg.Psql.MaxConns)
	assert.Equal(t, int32(2), cfg.Psql.MinConns)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/league")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/league", cfg.DatabaseURL)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.Equal(t, "league-api", cfg.Telemetry.ServiceName)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.Telemetry.TracingEnabled())
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoad_Production(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/league")
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9090")

	cfg, err := Load()

	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoad_InvalidMaxConns(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/league")
	t.Setenv("DB_MAX_CONNS", "0")

	_, err := Load()

	assert.Error(t, err)
}

func TestTracingEnabled(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/league")
	t.Setenv("OTEL_ENDPOINT", "http://localhost:4318")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Telemetry.TracingEnabled())

	t.Setenv("OTEL_ENABLED", "false")
	cfg, err = Load()
	require.NoError(t, err)
	assert.False(t, cfg.Telemetry.TracingEnabled())
}

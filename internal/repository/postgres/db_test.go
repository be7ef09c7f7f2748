package postgres

import (
	"testing"

	"github.com/Rrens/fitcoach/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host: "db", Port: 5432, User: "fit", Password: "secret",
		Database: "fitcoach", SSLMode: "disable", MaxConns: 8, MinConns: 2,
	}
}

func TestDSN(t *testing.T) {
	cfg := testDatabaseConfig()

	assert.Equal(t, cfg.DSN(), DSN(cfg, ""))
	assert.Equal(t, cfg.DSN(), DSN(cfg, "file:fitcoach.db"))

	supabase := "postgresql://postgres:pw@db.example.supabase.co:5432/postgres"
	assert.Equal(t, supabase, DSN(cfg, supabase))
}

func TestPoolConfig(t *testing.T) {
	cfg := testDatabaseConfig()

	pc, err := poolConfig(cfg, cfg.DSN())
	require.NoError(t, err)
	assert.Equal(t, int32(8), pc.MaxConns)
	assert.Equal(t, int32(2), pc.MinConns)
	assert.Equal(t, "db", pc.ConnConfig.Host)
	assert.Equal(t, applicationName, pc.ConnConfig.RuntimeParams["application_name"])
	assert.Equal(t, healthCheckPeriod, pc.HealthCheckPeriod)

	t.Run("explicit application name kept", func(t *testing.T) {
		pc, err := poolConfig(cfg, cfg.DSN()+"&application_name=worker")
		require.NoError(t, err)
		assert.Equal(t, "worker", pc.ConnConfig.RuntimeParams["application_name"])
	})

	t.Run("min above max ignored", func(t *testing.T) {
		cfg.MinConns = 50
		pc, err := poolConfig(cfg, cfg.DSN())
		require.NoError(t, err)
		assert.LessOrEqual(t, pc.MinConns, pc.MaxConns)
	})

	t.Run("bad dsn", func(t *testing.T) {
		_, err := poolConfig(cfg, "postgres://%zz")
		assert.Error(t, err)
	})
}

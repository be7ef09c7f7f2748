package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Rrens/fitcoach/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const (
	applicationName   = "fitcoach"
	connectTimeout    = 10 * time.Second
	healthCheckPeriod = time.Minute
	maxConnIdleTime   = 5 * time.Minute
)

// DB holds the pgx pool shared by the user and training repositories.
type DB struct {
	Pool *pgxpool.Pool
}

// DSN picks the connection string: a postgres URL in storage.dsn (Supabase
// hands these out) wins over the discrete database.* fields.
func DSN(cfg config.DatabaseConfig, storageDSN string) string {
	lower := strings.ToLower(storageDSN)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return storageDSN
	}
	return cfg.DSN()
}

func poolConfig(cfg config.DatabaseConfig, dsn string) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 && cfg.MinConns <= pc.MaxConns {
		pc.MinConns = cfg.MinConns
	}
	pc.HealthCheckPeriod = healthCheckPeriod
	pc.MaxConnIdleTime = maxConnIdleTime
	if _, ok := pc.ConnConfig.RuntimeParams["application_name"]; !ok {
		pc.ConnConfig.RuntimeParams["application_name"] = applicationName
	}
	return pc, nil
}

// Connect opens the pool and waits for the first ping.
func Connect(ctx context.Context, cfg config.DatabaseConfig, dsn string) (*DB, error) {
	pc, err := poolConfig(cfg, dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().
		Str("host", pc.ConnConfig.Host).
		Str("database", pc.ConnConfig.Database).
		Int32("max_conns", pc.MaxConns).
		Msg("postgres pool ready")

	return &DB{Pool: pool}, nil
}

func (db *DB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

func (db *DB) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rrens/fitcoach/internal/config"
	"github.com/Rrens/fitcoach/internal/repository/mongo"
	"github.com/Rrens/fitcoach/internal/repository/postgres"
	"github.com/Rrens/fitcoach/internal/repository/sqlstore"
)

// Open connects the backend selected by storage.driver.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	driver := strings.ToLower(cfg.Storage.Driver)
	switch driver {
	case "postgres", "supabase":
		db, err := postgres.Connect(ctx, cfg.Database, postgres.DSN(cfg.Database, cfg.Storage.DSN))
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver:    "postgres",
			Users:     postgres.NewUserRepository(db),
			Trainings: postgres.NewTrainingRepository(db),
			Ping:      db.Ping,
			Close: func() error {
				db.Close()
				return nil
			},
		}, nil

	case "mongo", "mongodb":
		db, err := mongo.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Timeout)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver:    "mongo",
			Users:     mongo.NewUserRepository(db),
			Trainings: mongo.NewTrainingRepository(db),
			Ping:      db.Ping,
			Close:     db.Close,
		}, nil

	case "sqlite", "sqlite3", "mysql", "mariadb":
		dialect, err := sqlstore.DialectFor(driver)
		if err != nil {
			return nil, err
		}
		db, err := sqlstore.Open(ctx, dialect, cfg.Storage.DSN)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver:    dialect.Name,
			Users:     sqlstore.NewUserRepository(db),
			Trainings: sqlstore.NewTrainingRepository(db),
			Ping:      db.Ping,
			Close:     db.Close,
		}, nil
	}

	return nil, fmt.Errorf("unsupported storage driver: %q", cfg.Storage.Driver)
}

package main

import (
	"fmt"
	"os"

	"github.com/Rrens/fitcoach/internal/config"
	"github.com/Rrens/fitcoach/internal/repository/postgres"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var source string

	dsn := func() (string, error) {
		cfg, err := config.Load()
		if err != nil {
			return "", fmt.Errorf("failed to load config: %w", err)
		}
		d := postgres.DSN(cfg.Database, cfg.Storage.DSN)
		if d == cfg.Database.DSN() {
			fmt.Printf("Connecting to database at %s:%d...\n", cfg.Database.Host, cfg.Database.Port)
		} else {
			fmt.Println("Connecting to database from storage.dsn...")
		}
		return d, nil
	}

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the postgres schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&source, "source", "file://migrations/postgres", "Migration source URL")

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dsn()
			if err != nil {
				return err
			}
			return postgres.RunMigrations(d, source)
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Revert migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dsn()
			if err != nil {
				return err
			}
			return postgres.RollbackMigrations(d, source, steps)
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "Number of migrations to revert")

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dsn()
			if err != nil {
				return err
			}
			v, dirty, err := postgres.MigrationVersion(d, source)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", v, dirty)
			return nil
		},
	}

	root.AddCommand(up, down, version)
	return root
}

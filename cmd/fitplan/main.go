package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/Rrens/fitcoach/internal/api"
	"github.com/Rrens/fitcoach/internal/cli"
	"github.com/Rrens/fitcoach/internal/config"
	"github.com/Rrens/fitcoach/internal/logging"
	"github.com/Rrens/fitcoach/internal/service"
	"github.com/Rrens/fitcoach/internal/training"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// keep stdout for the plan; logs go to stderr at warn and above
	cfg.Logging.Level = "warn"
	closer, err := logging.Setup(cfg.Logging, false)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closer.Close()

	bounds, err := cfg.Training.ValidatorBounds()
	if err != nil {
		return err
	}

	oracle := service.NewRouterOracle(api.NewLLMRouter(cfg.LLM), service.OracleParams{
		MaxTokens:   cfg.Training.MaxTokens,
		Temperature: cfg.Training.Temperature,
		TopP:        cfg.Training.TopP,
		Timeout:     cfg.LLM.Timeout,
	})

	app := &cli.App{
		Generator: training.NewGenerator(oracle, training.WithBounds(bounds)),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

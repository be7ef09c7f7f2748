package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rrens/fitcoach/internal/api"
	customMiddleware "github.com/Rrens/fitcoach/internal/api/middleware"
	"github.com/Rrens/fitcoach/internal/archive"
	"github.com/Rrens/fitcoach/internal/config"
	"github.com/Rrens/fitcoach/internal/logging"
	"github.com/Rrens/fitcoach/internal/repository"
	"github.com/Rrens/fitcoach/internal/repository/postgres"
	"github.com/Rrens/fitcoach/internal/repository/redis"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const postgresMigrations = "file://migrations/postgres"

func main() {
	// Load .env file - try multiple locations
	envPaths := []string{".env", "../.env", "../../.env"}
	envLoaded := false
	for _, p := range envPaths {
		if err := godotenv.Load(p); err == nil {
			fmt.Printf("Loaded .env from: %s\n", p)
			envLoaded = true
			break
		}
	}
	if !envLoaded {
		fmt.Println("Warning: .env file not found in any standard location")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logCloser, err := logging.Setup(cfg.Logging, cfg.Server.Production())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logging")
	}
	defer logCloser.Close()

	if cfg.Auth.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is not set")
	}

	log.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Msg("Starting fitcoach API server")

	ctx := context.Background()

	if cfg.Storage.Driver == "postgres" || cfg.Storage.Driver == "supabase" {
		if err := postgres.RunMigrations(postgres.DSN(cfg.Database, cfg.Storage.DSN), postgresMigrations); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	// Initialize storage
	store, err := repository.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer store.Close()

	deps := api.Deps{
		Config: cfg,
		Store:  store,
		LLM:    api.NewLLMRouter(cfg.LLM),
	}

	// Redis backs the plan cache and the rate limiter
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer redisClient.Close()

		deps.Cache = redis.NewTrainingCache(redisClient)
		deps.Limiter = customMiddleware.Limiter(redis.NewRateLimiter(
			redisClient,
			cfg.Security.RateLimit.RequestsPerMinute,
			cfg.Security.RateLimit.Burst,
		))
	} else {
		log.Warn().Msg("Redis disabled: no plan cache and no rate limiting")
	}

	if cfg.S3.Enabled {
		archiver, err := archive.NewS3(ctx, cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to configure S3 archive")
		}
		deps.Archiver = archiver
	}

	// Initialize router
	router, err := api.NewRouter(deps)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build router")
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Msgf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

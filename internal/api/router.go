package api

import (
	"net/http"

	"github.com/Rrens/fitcoach/internal/api/handler"
	customMiddleware "github.com/Rrens/fitcoach/internal/api/middleware"
	"github.com/Rrens/fitcoach/internal/archive"
	"github.com/Rrens/fitcoach/internal/config"
	"github.com/Rrens/fitcoach/internal/llm"
	"github.com/Rrens/fitcoach/internal/repository"
	"github.com/Rrens/fitcoach/internal/security"
	"github.com/Rrens/fitcoach/internal/service"
	"github.com/Rrens/fitcoach/internal/training"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Deps are the collaborators the router wires into services. Cache, Archiver
// and Limiter are optional.
type Deps struct {
	Config   *config.Config
	Store    *repository.Store
	LLM      *llm.Router
	Cache    service.TrainingCache
	Archiver archive.Archiver
	Limiter  customMiddleware.Limiter
}

// NewRouter creates and configures the HTTP router
func NewRouter(deps Deps) (http.Handler, error) {
	cfg := deps.Config

	bounds, err := cfg.Training.ValidatorBounds()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.Server.MiddlewareTimeout > 0 {
		r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))
	}

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize security components
	jwtManager := security.NewJWTManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)

	// Initialize services
	trainingOracle := service.NewRouterOracle(deps.LLM, service.OracleParams{
		MaxTokens:   cfg.Training.MaxTokens,
		Temperature: cfg.Training.Temperature,
		TopP:        cfg.Training.TopP,
		Timeout:     cfg.LLM.Timeout,
	})
	nutritionOracle := service.NewRouterOracle(deps.LLM, service.OracleParams{
		MaxTokens:   800,
		Temperature: 0.7,
		TopP:        0.9,
		Timeout:     cfg.LLM.Timeout,
	})

	authService := service.NewAuthService(deps.Store.Users, jwtManager)
	trainingService := service.NewTrainingService(
		training.NewGenerator(trainingOracle, training.WithBounds(bounds)),
		deps.Store.Trainings,
		deps.Archiver,
		deps.Cache,
	)
	nutritionService := service.NewNutritionService(nutritionOracle, deps.Store.Trainings)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, handler.CookieOptions{
		Name:   cfg.Auth.CookieName,
		Secure: cfg.Server.Production(),
	})
	trainingHandler := handler.NewTrainingHandler(trainingService)
	nutritionHandler := handler.NewNutritionHandler(nutritionService)

	authMiddleware := customMiddleware.NewAuthMiddleware(jwtManager, cfg.Auth.CookieName)
	rateLimitMiddleware := customMiddleware.NewRateLimitMiddleware(deps.Limiter)

	r.Route("/api", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(deps.Store.Ping))

		// Auth routes (public)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/check-email", authHandler.CheckEmail)
			r.Post("/logout", authHandler.Logout)
			r.With(authMiddleware.Authenticate).Get("/me", authHandler.Me)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/llm-providers", handler.ListLLMProviders(deps.LLM))
			r.Get("/training/current", trainingHandler.Current)

			r.Group(func(r chi.Router) {
				r.Use(rateLimitMiddleware.Limit)

				r.Post("/training/generate", trainingHandler.Generate)
				r.Post("/nutrition/chat", nutritionHandler.Chat)
			})
		})
	})

	return r, nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/analyst"
	coreport "github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
	authUseCase "github.com/amirhossein-jamali/nerdytips/internal/domain/usecase/auth"
	predictionUseCase "github.com/amirhossein-jamali/nerdytips/internal/domain/usecase/prediction"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/gemini"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/identifier"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/security"
	timeProvider "github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(cfg.IsProduction(), logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewUTCTimeProvider()
	ids := identifier.NewNanoIDGenerator()

	// Connect to the database and bring the schema up to date
	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager, appLogger)
	predictionRepo := repository.NewPredictionRepository(dbManager, appLogger)

	// Credentials
	tokens, err := security.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, tp)
	if err != nil {
		return fmt.Errorf("create token issuer: %w", err)
	}
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)

	matchAnalyst, err := newMatchAnalyst(ctx, cfg, appLogger)
	if err != nil {
		return err
	}

	// Initialize use cases
	auth := authUseCase.NewAuthUseCase(userRepo, hasher, tokens, ids, tp, appLogger)
	predictions := predictionUseCase.NewPredictionUseCase(predictionRepo, matchAnalyst, ids, tp, appLogger)

	if cfg.Predictions.SeedOnStartup {
		if _, err := predictions.SeedDemoIfEmpty(ctx); err != nil {
			appLogger.Error("Failed to seed demo predictions", map[string]any{
				"error": err.Error(),
			})
		}
	}

	if cfg.Payments.Enabled() {
		appLogger.Info("Payment provider key configured", nil)
	}

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins)

	limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		Burst:             cfg.RateLimit.Burst,
	})
	go limiter.Run(ctx)

	routes.SetupRoutes(router, routes.Handlers{
		Auth:       handler.NewAuthHandler(auth, appLogger),
		Prediction: handler.NewPredictionHandler(predictions, appLogger),
		Admin:      handler.NewAdminHandler(predictions, appLogger),
		Health:     handler.NewHealthHandler(dbManager, appLogger),
	}, auth, limiter)

	if err := routes.SetupClient(router, routes.ClientConfig{
		Production:  cfg.IsProduction(),
		StaticDir:   cfg.Server.StaticDir,
		DevProxyURL: cfg.Server.DevProxyURL,
	}, appLogger); err != nil {
		return fmt.Errorf("setup client: %w", err)
	}

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

// newMatchAnalyst builds the Gemini analyst, or the offline one when no key is set
func newMatchAnalyst(ctx context.Context, cfg *config.Config, appLogger coreport.Logger) (analyst.MatchAnalyst, error) {
	a, err := gemini.NewAnalyst(ctx, gemini.Config{
		APIKey:    cfg.Generator.APIKey,
		Model:     cfg.Generator.Model,
		UseSearch: cfg.Generator.UseSearch,
		Retry: gemini.RetryConfig{
			AttemptTimeout: cfg.Generator.Timeout,
			MaxRetries:     cfg.Generator.MaxRetries,
			RetryInterval:  cfg.Generator.RetryDelay,
		},
	}, appLogger)
	if errors.Is(err, gemini.ErrMissingAPIKey) {
		appLogger.Warn("GEMINI_API_KEY is not set, prediction generation is disabled", nil)
		return gemini.OfflineAnalyst{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("create analyst: %w", err)
	}
	return a, nil
}

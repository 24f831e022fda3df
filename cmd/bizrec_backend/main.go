package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/biz_records_app/internal/adapters/cache"
	"github.com/SscSPs/biz_records_app/internal/adapters/database/memory"
	"github.com/SscSPs/biz_records_app/internal/adapters/database/pgsql"
	portsrepo "github.com/SscSPs/biz_records_app/internal/core/ports/repositories"
	"github.com/SscSPs/biz_records_app/internal/core/services"
	"github.com/SscSPs/biz_records_app/internal/core/validation"
	"github.com/SscSPs/biz_records_app/internal/handlers"
	"github.com/SscSPs/biz_records_app/internal/middleware"
	"github.com/SscSPs/biz_records_app/internal/platform/config"
	"github.com/SscSPs/biz_records_app/internal/utils"
	"github.com/SscSPs/biz_records_app/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Business Records API
// @version 1.0
// @description Records, catalog, purchasing and customer services for a small business.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	closers := make([]func() error, 0, 3)

	repos, closeStore, err := openRecordStore(startCtx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize record store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	closers = append(closers, closeStore)

	summaryCache, closeCache := openSummaryCache(startCtx, cfg, logger)
	if closeCache != nil {
		closers = append(closers, closeCache)
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, summaryCache)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	closers = append(closers, posthogClient.Close)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors, usage events)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, validation.New()); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			logger.Error("Failed to release resource", slog.String("error", err.Error()))
		}
	}
	logger.Info("Server stopped")
}

// openRecordStore connects to Postgres when a database URL is configured and
// falls back to the in-memory store otherwise.
func openRecordStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func() error, error) {
	if cfg.DatabaseURL == "" {
		logger.Info("Using in-memory record store")
		return memory.NewRepositoryProvider(memory.NewStore()), func() error { return nil }, nil
	}

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		if err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, database.Up, logger); err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	return pgsql.NewRepositoryProvider(dbPool), func() error {
		database.ClosePgxPool(dbPool)
		return nil
	}, nil
}

// openSummaryCache returns the Redis dashboard cache when it is configured and
// reachable, and a no-op cache otherwise.
func openSummaryCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.SummaryCache, func() error) {
	if cfg.RedisAddr == "" {
		logger.Info("Dashboard cache disabled")
		return cache.NoopSummaryCache{}, nil
	}

	redisCache := cache.NewRedisSummaryCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := redisCache.Ping(ctx); err != nil {
		logger.Warn("Redis unavailable, dashboard cache disabled", slog.String("error", err.Error()))
		_ = redisCache.Close()
		return cache.NoopSummaryCache{}, nil
	}
	logger.Info("Dashboard cache: redis", slog.String("addr", cfg.RedisAddr))
	return redisCache, redisCache.Close
}

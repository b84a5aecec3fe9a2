package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ressKim-io/text-haptics/api-service/internal/adapter/client"
	"github.com/ressKim-io/text-haptics/api-service/internal/adapter/http/router"
	"github.com/ressKim-io/text-haptics/api-service/internal/adapter/repository/postgres"
	"github.com/ressKim-io/text-haptics/api-service/internal/domain/repository"
	"github.com/ressKim-io/text-haptics/api-service/internal/domain/service"
	"github.com/ressKim-io/text-haptics/api-service/internal/infrastructure/cache"
	"github.com/ressKim-io/text-haptics/api-service/internal/infrastructure/config"
	"github.com/ressKim-io/text-haptics/api-service/internal/infrastructure/database"
	"github.com/ressKim-io/text-haptics/api-service/internal/infrastructure/logger"
	"github.com/ressKim-io/text-haptics/api-service/internal/infrastructure/metrics"
	"github.com/ressKim-io/text-haptics/api-service/internal/infrastructure/taxonomy"
	"github.com/ressKim-io/text-haptics/api-service/internal/usecase"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Load and validate the class taxonomy
	tax, err := taxonomy.Load(cfg.Taxonomy.Path, cfg.Taxonomy.Mode)
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}
	log.Info("Taxonomy loaded",
		zap.String("mode", string(tax.Mode)),
		zap.Int("categories", len(tax.Categories)),
		zap.Int("classes", len(tax.Classes)),
	)

	if err := os.MkdirAll(cfg.Audio.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create audio directory: %w", err)
	}

	resultCache, redisClient := cache.New(cfg, log)

	// Initialize database (optional)
	var db *gorm.DB
	var classificationRepo repository.ClassificationRepository
	if cfg.Database.Enabled {
		db, err = database.NewPostgresDB(&cfg.Database)
		if err != nil {
			log.Error("Failed to connect to database", zap.Error(err))
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		log.Info("Connected to database")

		if err := database.AutoMigrate(db); err != nil {
			log.Error("Failed to run migrations", zap.Error(err))
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("Database migrations completed")
		classificationRepo = postgres.NewClassificationRepository(db)
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	inference := client.NewInferenceClient(cfg.Upstream.URL, cfg.Upstream.Token, cfg.Upstream.Timeout, m)
	classifier := service.NewChunkedClassifier(client.NewZeroShotClassifier(inference))
	classifyUC := usecase.NewClassifyUsecase(tax, classifier, cfg.Upstream.RunTimeout, resultCache, classificationRepo, m, log)

	// Setup router
	r := router.Setup(router.Dependencies{
		ClassifyUC:   classifyUC,
		Cache:        resultCache,
		DB:           db,
		Redis:        redisClient,
		Gatherer:     prometheus.DefaultGatherer,
		Logger:       log,
		AuthKey:      cfg.Auth.Key,
		AudioDir:     cfg.Audio.Dir,
		TaxonomyMode: string(tax.Mode),
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil && sqlDB != nil {
			_ = sqlDB.Close()
		}
	}

	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info("Server exited")
	return nil
}

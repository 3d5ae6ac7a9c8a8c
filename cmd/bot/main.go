package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursebot/internal/config"
	"coursebot/internal/domain"
	"coursebot/internal/drive"
	"coursebot/internal/handler"
	"coursebot/internal/middleware"
	"coursebot/internal/repository"
	filestore "coursebot/internal/repository/file"
	"coursebot/internal/repository/postgres"
	"coursebot/internal/server"
	"coursebot/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting course bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Pick the state store: Postgres when a DSN is configured, the
	// JSON file store otherwise
	var repo repository.UserRepository
	if cfg.DatabaseDSN != "" {
		db, err := connectDatabase(cfg.DatabaseDSN, logger)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := runMigrations(db, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}

		repo = postgres.NewUserRepo(db)
		logger.Info("Using Postgres state store")
	} else {
		repo = filestore.New(cfg.StateFile, logger)
		logger.Info("Using file state store", zap.String("path", cfg.StateFile))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Drive client for access grants
	driveClient, err := drive.NewClient(ctx, cfg.CredentialsFile)
	if err != nil {
		logger.Fatal("Failed to create drive client", zap.Error(err))
	}

	// Initialize Telegram bot. No poller: updates arrive over the
	// webhook endpoint, and Synchronous keeps each update handled
	// fully before the HTTP response goes out.
	bot, err := tele.NewBot(tele.Settings{
		Token:       cfg.BotToken,
		Synchronous: true,
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}
	bot.Use(middleware.Logging(logger))

	logger.Info("Telegram bot initialized")

	// Initialize services
	catalog := domain.DefaultCatalog()
	purchases := service.NewPurchaseService(repo, catalog)
	access := service.NewAccessService(catalog, driveClient, logger)
	notifier := handler.NewTelegramNotifier(bot)
	fulfillment := service.NewFulfillmentService(repo, access, notifier, logger)
	retention := service.NewRetentionService(repo, cfg.StateTTL, logger)

	// Initialize handler
	h := handler.NewHandler(bot, purchases, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Register the webhook with Telegram so updates reach us
	if err := registerWebhook(bot, cfg.PublicURL+"/webhook/telegram", cfg.WebhookSecret); err != nil {
		logger.Fatal("Failed to register webhook", zap.Error(err))
	}

	logger.Info("Webhook registered", zap.String("public_url", cfg.PublicURL))

	// Start retention sweep in background
	go runRetentionJob(ctx, retention, logger)

	// Start webhook server
	srv := server.New(bot, fulfillment, cfg.WebhookSecret, logger)
	httpServer := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      srv.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("Webhook server listening", zap.String("addr", cfg.ListenAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Webhook server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping server...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down server cleanly", zap.Error(err))
	}
	cancel()

	logger.Info("Bot stopped gracefully")
}

// registerWebhook points Telegram at our endpoint. The secret token
// comes back in a header on every delivery and gates the endpoint.
func registerWebhook(bot *tele.Bot, url, secret string) error {
	params := map[string]string{
		"url":                  url,
		"secret_token":         secret,
		"drop_pending_updates": "true",
	}
	_, err := bot.Raw("setWebhook", params)
	if err != nil {
		return fmt.Errorf("setWebhook failed: %w", err)
	}
	return nil
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Database migrations completed")
	return nil
}

// runRetentionJob periodically sweeps stale purchase records
func runRetentionJob(ctx context.Context, retention *service.RetentionService, logger *zap.Logger) {
	// Run sweep once at startup
	if err := retention.Sweep(); err != nil {
		logger.Error("Failed to run initial sweep", zap.Error(err))
	}

	// Then run every 24 hours
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Retention job stopped")
			return
		case <-ticker.C:
			if err := retention.Sweep(); err != nil {
				logger.Error("Failed to run scheduled sweep", zap.Error(err))
			}
		}
	}
}

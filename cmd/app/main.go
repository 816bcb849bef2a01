package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"nourishcoach/internal/booking"
	"nourishcoach/internal/config"
	"nourishcoach/internal/db"
	"nourishcoach/internal/email"
	"nourishcoach/internal/kvstore"
	"nourishcoach/internal/logger"
	"nourishcoach/internal/server"
)

// @title NourishCoach API
// @version 1.0
// @description Booking, calculators and meal-plan API for a diet coaching clinic.
// @host localhost:8080
// @BasePath /
func main() {

	logger.Init()
	logger.Info("Starting NourishCoach application")
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Postgres backs the appointment ledger. Without it the app still runs
	// in demo mode on a pre-seeded in-memory ledger.
	var ledger booking.Ledger
	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Warnf("Database unavailable, running demo mode with in-memory ledger: %v", err)
		ledger = booking.NewSeededMemoryLedger()
	} else {
		defer database.Close()
		logger.Info("Database connected")

		if err := db.RunMigrations(database, "migrations"); err != nil {
			logger.Fatalf("Failed to run migrations: %v", err)
		}
		logger.Info("Migrations completed")

		ledger = booking.NewPostgresLedger(database)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis carries the kv store and the email queue. Demo mode degrades to
	// an in-memory store and no outgoing mail.
	var store kvstore.Store
	var emailService *email.Service

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	pingCtx, pingCancel := context.WithTimeout(ctx, 2*time.Second)
	err = redisClient.Ping(pingCtx).Err()
	pingCancel()
	if err != nil {
		logger.Warnf("Redis unavailable, running demo mode with in-memory store: %v", err)
		redisClient.Close()
		store = kvstore.NewMemory()
	} else {
		store = kvstore.NewRedis(redisClient)

		emailService = email.New(
			cfg.EmailFrom,
			cfg.EmailFromName,
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPass,
			cfg.RedisAddr,
		)
		defer emailService.Close()
		go emailService.Start(ctx)
		logger.Info("Email worker started")
	}

	srv, err := server.New(cfg, ledger, store, emailService)
	if err != nil {
		logger.Fatalf("Failed to build server: %v", err)
	}

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

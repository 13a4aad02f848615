package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/satyensinh/trainer-booking-backend/internal/config"
	"github.com/satyensinh/trainer-booking-backend/internal/db"
	"github.com/satyensinh/trainer-booking-backend/internal/logger"
	"github.com/satyensinh/trainer-booking-backend/internal/notify"
	"github.com/satyensinh/trainer-booking-backend/internal/server"
	"github.com/satyensinh/trainer-booking-backend/internal/storage"
)

// @title           TrainerBook API
// @version         1.0
// @description     Booking backend for a freelance technical trainer.
// @BasePath        /
func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		logger.Fatalf("Failed to prepare upload directory: %v", err)
	}

	notifier := notify.New(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.RedisAddr,
	)
	defer notifier.Close()

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go notifier.Start(workerCtx)

	srv := server.New(database, cfg, store, notifier)

	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Forced shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tire-service/booking-bot/internal/appointments"
	"github.com/tire-service/booking-bot/internal/config"
	"github.com/tire-service/booking-bot/internal/conversation"
	"github.com/tire-service/booking-bot/internal/notify"
	"github.com/tire-service/booking-bot/internal/observability/metrics"
	"github.com/tire-service/booking-bot/internal/ops"
	"github.com/tire-service/booking-bot/internal/schedule"
	"github.com/tire-service/booking-bot/internal/telegram"
	"github.com/tire-service/booking-bot/pkg/logging"
)

func main() {
	// Load configuration (.env is optional)
	_ = godotenv.Load()
	cfg := config.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting tire-service booking bot",
		"env", cfg.Env,
		"http_port", cfg.HTTPPort,
	)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	botMetrics := metrics.NewBotMetrics(prometheus.DefaultRegisterer)

	// Pick the appointment store: Postgres when configured, otherwise
	// an in-memory fallback for local runs.
	var repo appointments.Repository
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to create pgx pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
		repo = appointments.NewPostgresRepository(pool)
		logger.Info("appointment store: postgres")
	} else {
		repo = appointments.NewInMemoryRepository()
		logger.Warn("DATABASE_URL not set, appointments will not survive a restart")
	}

	apptService := appointments.NewService(repo, logger.Named("appointments"), botMetrics)

	bot, err := telegram.NewBot(cfg.BotToken, cfg.PollTimeout, logger.Named("telegram"), botMetrics)
	if err != nil {
		logger.Error("failed to initialize telegram bot", "error", err)
		os.Exit(1)
	}

	notifier := notify.NewService(bot, cfg.AdminChatID, logger.Named("notify"), botMetrics)

	machine := conversation.NewMachine(conversation.Config{
		Sessions: conversation.NewSessionStore(),
		Schedule: schedule.NewGenerator(),
		Booker:   apptService,
		Notifier: notifier,
		Logger:   logger.Named("conversation"),
		Metrics:  botMetrics,
	})

	// Ops HTTP server (health + metrics)
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      ops.NewRouter(logger.Named("ops"), prometheus.DefaultGatherer),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("ops server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("ops server error", "error", err)
			os.Exit(1)
		}
	}()

	// Polling loop
	pollDone := make(chan error, 1)
	go func() {
		pollDone <- bot.Run(ctx, machine)
	}()

	// Wait for interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("shutting down...")
	case err := <-pollDone:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("polling stopped", "error", err)
		}
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("ops server forced to shutdown", "error", err)
	}

	logger.Info("bot stopped")
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"numberhunt/internal/config"
	"numberhunt/internal/handler"
	"numberhunt/internal/middleware"
	"numberhunt/internal/repository/file"
	"numberhunt/internal/service"

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

	logger.Info("Starting Number Hunt Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.Int("allowed_users", len(cfg.AllowedUsers)),
	)

	// Prepare the counter file and photo directory
	if err := initStorage(cfg); err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}

	logger.Info("Storage initialized",
		zap.String("data_file", cfg.DataFile),
		zap.String("photo_dir", cfg.PhotoDir),
	)

	// Initialize repositories
	counterRepo := file.NewCounterRepo(cfg.DataFile)
	photoRepo := file.NewPhotoRepo(cfg.PhotoDir)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: newPoller(cfg),
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize services
	accessService := service.NewAccessService(cfg.AllowedUsers)
	notifyService := service.NewNotifyService(accessService, handler.NewBotSender(bot), logger)
	collectionService := service.NewCollectionService(counterRepo, photoRepo, notifyService, logger)
	sessionService := service.NewSessionService()

	// Every handler sits behind the allow-list check
	bot.Use(middleware.AuthMiddleware(accessService, logger))

	// Initialize handler
	h := handler.NewHandler(bot, sessionService, collectionService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Liveness endpoint for uptime monitoring
	healthSrv := startHealthServer(cfg.HealthAddr, logger)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := healthSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Health server shutdown failed", zap.Error(err))
	}

	logger.Info("Bot stopped gracefully")
}

// initStorage creates the photo directory and seeds the counter on first run
func initStorage(cfg *config.Config) error {
	if err := os.MkdirAll(cfg.PhotoDir, 0o755); err != nil {
		return fmt.Errorf("create photo directory: %w", err)
	}

	if _, err := os.Stat(cfg.DataFile); os.IsNotExist(err) {
		if err := file.NewCounterRepo(cfg.DataFile).Set(1); err != nil {
			return fmt.Errorf("seed counter: %w", err)
		}
	}

	return nil
}

// newPoller selects webhook or long-polling delivery depending on configuration
func newPoller(cfg *config.Config) tele.Poller {
	if cfg.Webhook.URL != "" {
		return &tele.Webhook{
			Listen:   cfg.Webhook.Listen,
			Endpoint: &tele.WebhookEndpoint{PublicURL: cfg.Webhook.URL},
		}
	}
	return &tele.LongPoller{Timeout: 10 * time.Second}
}

// startHealthServer serves the fixed liveness response
func startHealthServer(addr string, logger *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "alive")
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Health server stopped", zap.Error(err))
		}
	}()

	return srv
}

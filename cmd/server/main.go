package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"player-data-api/internal/config"
	"player-data-api/internal/database"
	"player-data-api/internal/encryption"
	"player-data-api/internal/handler"
	"player-data-api/internal/logger"
	"player-data-api/internal/repository/postgres"
	"player-data-api/internal/service"
	"player-data-api/internal/worker"

	_ "player-data-api/docs"
)

// @title Player Data API
// @version 1.0
// @description Synthesizes deterministic player profiles, as JSON or as AES-CBC encrypted protobuf
// @host localhost:5000
// @BasePath /
func main() {
	// Bootstrap logger until the configured one is available
	log := logger.New("info", true)

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	log = logger.New(cfg.Log.Level, cfg.Log.Pretty)

	// Key material is validated once; a bad secret stops the process
	cbc, err := encryption.NewCBCCipher(cfg.Crypto.Key, cfg.Crypto.IV)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize cipher")
	}

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Access log is optional and the only component needing the database
	var accessLog service.AccessLogService = service.NopAccessLog{}
	if cfg.Audit.Enabled {
		dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		dbPool, err := database.NewPool(dbCtx, cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer dbPool.Close()

		accessLogRepo := postgres.NewAccessLogRepository(dbPool)
		if err := accessLogRepo.EnsureSchema(dbCtx); err != nil {
			log.Fatal().Err(err).Msg("failed to prepare access log schema")
		}

		accessLog = service.NewAccessLogService(accessLogRepo, cfg.Audit.BufferSize, cfg.Audit.BatchSize, log)

		// Stopped after the HTTP server so in-flight requests are still flushed
		flusher := worker.NewAccessLogFlusher(accessLog, cfg.Audit.FlushInterval, log)
		flusher.Start(context.Background())
		defer flusher.Stop()
	}

	// Services
	playerService := service.NewPlayerService(cbc, time.Now, log)

	// http handler
	h := handler.NewHandler(playerService, accessLog, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Bool("audit", cfg.Audit.Enabled).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}

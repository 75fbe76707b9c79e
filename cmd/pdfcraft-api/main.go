// Package main provides the PDFCraft API server entrypoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pdfcraft/pdfcraft/internal/capability"
	"github.com/pdfcraft/pdfcraft/internal/config"
	"github.com/pdfcraft/pdfcraft/internal/observability"
	"github.com/pdfcraft/pdfcraft/internal/store"
)

func main() {
	// Load configuration
	cfgPath := flag.String("config", os.Getenv("CONFIG_PATH"), "config file path")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: cfg.Observability.ServiceName,
	})

	logger.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("uploads", cfg.Storage.UploadDir).
		Str("outputs", cfg.Storage.OutputDir).
		Msg("Starting PDFCraft API")

	// Probe document libraries once; the registry is immutable afterwards.
	registry := capability.NewDefaultRegistry(logger)
	logger.Info().Strs("tools", registry.AvailableOperations()).Msg("Capability report")

	st, err := store.New(cfg.Storage.UploadDir, cfg.Storage.OutputDir, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to prepare scratch storage")
	}

	// Background sweep for expired scratch files, stopped with the server.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	sweeper := store.NewSweeper(st, cfg.Storage.SweepInterval, cfg.Storage.Retention, logger)
	go sweeper.Run(sweepCtx)

	router := NewRouter(logger, cfg, st, registry)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("HTTP server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt or error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error().Err(err).Msg("Server error")
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdown)
	defer cancel()

	stopSweep()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
		if err := srv.Close(); err != nil {
			logger.Error().Err(err).Msg("Forced shutdown failed")
		}
	}

	logger.Info().Msg("Server stopped")
}

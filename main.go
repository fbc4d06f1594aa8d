package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Black-And-White-Club/budtender-trivia/app"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability"
	"github.com/Black-And-White-Club/budtender-trivia/config"
)

const shutdownTimeout = 30 * time.Second

func main() {
	configFile := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	if err := run(*configFile); err != nil {
		fmt.Fprintf(os.Stderr, "budtender-trivia: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	obs, err := observability.New(os.Stdout, observability.Config{
		Environment: cfg.Observability.Environment,
		LogLevel:    cfg.Observability.LogLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	logger := obs.Logger

	application, err := app.NewApp(ctx, cfg, obs)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}

	errs := application.Start(ctx)

	logger.InfoContext(ctx, "Waiting for shutdown signal")
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errs:
		logger.Error("HTTP server failed", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := application.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", "error", err)
	}

	return runErr
}

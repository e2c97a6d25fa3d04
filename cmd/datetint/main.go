package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/datetint/datetint/internal/config"
	"github.com/datetint/datetint/internal/di"
	"github.com/datetint/datetint/internal/ports"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	cfg *config.Config,
	highlighter ports.FileHighlighter,
) error {
	defer logger.Sync()

	// Start watching for rename activity
	if err := highlighter.Start(); err != nil {
		logger.Fatal("Failed to start filename highlighter", zap.Error(err))
		return err
	}

	// Initial pass, so the host has a sheet before anything is renamed
	if err := highlighter.Refresh(context.Background()); err != nil {
		logger.Error("Initial filename pass failed", zap.Error(err))
	}

	// A settings save reruns the pass with the new palette and thresholds
	if err := cfg.OnSettingsSave(func() {
		logger.Info("Settings changed, rebuilding filename highlights")
		if err := highlighter.Refresh(context.Background()); err != nil {
			logger.Error("Filename pass failed after settings change", zap.Error(err))
		}
	}); err != nil {
		logger.Error("Failed to watch settings file", zap.Error(err))
	}

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	logger.Info("Shutting down...")

	// Stop the watcher
	if err := highlighter.Stop(); err != nil {
		logger.Error("Failed to stop filename highlighter", zap.Error(err))
	}

	logger.Info("Shutdown complete")
	return nil
}

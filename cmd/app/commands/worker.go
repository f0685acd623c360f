package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/allisson/caseflow/internal/app"
	"github.com/allisson/caseflow/internal/config"
)

// RunWorker starts the case event queue worker with graceful shutdown support.
// Blocks until receiving SIGINT/SIGTERM or encountering a fatal consumer error.
func RunWorker(ctx context.Context, version string) error {
	// Load configuration
	cfg := config.Load()

	// Create DI container
	container := app.NewContainer(cfg)

	// Get logger from container
	logger := container.Logger()
	logger.Info("starting worker",
		slog.String("version", version),
		slog.String("topic", cfg.KafkaTopic),
		slog.String("group_id", cfg.KafkaGroupID),
	)

	// Ensure cleanup on exit
	defer closeContainer(container, logger)

	// Get worker from container (this initializes all dependencies)
	worker, err := container.Worker()
	if err != nil {
		return fmt.Errorf("failed to initialize worker: %w", err)
	}

	// Setup graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	workerErr := make(chan error, 1)
	go func() {
		if err := worker.Run(ctx); err != nil {
			workerErr <- fmt.Errorf("worker error: %w", err)
		}
		close(workerErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-workerErr:
		if err != nil {
			return err
		}
	}

	return nil
}

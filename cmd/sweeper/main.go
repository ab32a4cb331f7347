// The sweeper service runs the circulation lifecycle sweep on a fixed
// interval: expiring overdue approved reservations and flagging overdue
// active loans. It shuts down gracefully on SIGINT/SIGTERM.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/unibiblio/circulation-engine-go/circulation/features/command/markexpired"
	"github.com/unibiblio/circulation-engine-go/circulation/features/command/markloanlate"
	"github.com/unibiblio/circulation-engine-go/circulation/shell/config"
	"github.com/unibiblio/circulation-engine-go/circulation/sweeper"
	"github.com/unibiblio/circulation-engine-go/recordstore/postgresengine"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("sweeper service failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn := config.PostgresDSNFromEnv()
	interval := sweepIntervalFromEnv()

	pool, err := config.PostgresPGXPool(ctx, dsn)
	if err != nil {
		return err
	}
	defer pool.Close()

	recordStore, err := postgresengine.NewRecordStoreFromPGXPool(pool, postgresengine.WithLogger(logger))
	if err != nil {
		return err
	}

	sweep := sweeper.NewSweeper(
		recordStore,
		markexpired.NewCommandHandler(recordStore),
		markloanlate.NewCommandHandler(recordStore),
		sweeper.WithLogger(logger),
	)

	logger.Info("sweeper service started", "interval", interval.String())

	done := sweep.Start(ctx, interval)

	<-ctx.Done()
	logger.Info("shutdown signal received, waiting for current sweep to finish")

	select {
	case <-done:
	case <-time.After(shutdownDrainDeadline):
		logger.Warn("sweep loop did not stop before the drain deadline")
	}

	logger.Info("sweeper service stopped")

	return nil
}

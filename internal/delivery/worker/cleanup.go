// Package worker contains background entrypoints that run beside the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/delivery"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

const (
	cleanupInterval = time.Hour
	// Inactive sessions are kept for a while as an audit trail before the
	// sweeper removes them.
	sessionRetention = 30 * 24 * time.Hour
)

type CleanupParams struct {
	fx.In
	fx.Lifecycle

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// cleanupWorker periodically removes stale sessions and expired refresh tokens.
type cleanupWorker struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
	stop      chan struct{}
	done      chan struct{}
}

// NewCleanupWorker is the constructor for cleanupWorker.
func NewCleanupWorker(params CleanupParams) (delivery.Delivery, error) {
	worker := &cleanupWorker{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			close(worker.stop)
			select {
			case <-worker.done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})

	return worker, nil
}

// Serve runs the sweep loop until stopped.
func (w *cleanupWorker) Serve(ctx context.Context) error {
	defer close(w.done)

	w.logger.Info("Starting session cleanup worker", slog.Duration("interval", cleanupInterval))

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.stop:
			return nil
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *cleanupWorker) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if _, err := w.sessionUC.CleanupStale(sweepCtx, sessionRetention); err != nil {
		w.logger.Warn("Session cleanup sweep failed", slog.Any("error", err))
	}
}

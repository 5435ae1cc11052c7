// Package cli holds small helpers shared by folio's commands.
package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
)

// SignalContext returns a context that is canceled when one of
// signals is received or when ctx is done. The signal that caused
// the cancellation is logged.
func SignalContext(ctx context.Context, log *slog.Logger, signals ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)

	c := make(chan os.Signal, 1)
	signal.Notify(c, signals...)

	go func() {
		defer cancel()
		defer signal.Stop(c)

		select {
		case sig := <-c:
			log.Info("Shutting down", "signal", sig.String())
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

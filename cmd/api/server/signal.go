package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WithSignal derives a context that is canceled on SIGINT or SIGTERM.
// The returned cancel func also stops signal delivery.
func WithSignal(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(quit)
		cancel()
	}
}

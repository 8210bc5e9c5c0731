package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// signalContext is canceled when ctx is, or on an interrupt or terminate signal.
func signalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

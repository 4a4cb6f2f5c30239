package common

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WithInterrupt creates a context that is cancelled when an interrupt signal
// (SIGINT or SIGTERM) is received. Returns the context and a cleanup function
// that should be called when done (typically via defer).
//
// Cancelling the context aborts any in-flight store calls made with it, so a
// Ctrl-C while waiting on Firestore ends the run instead of hanging. The
// cleanup function stops signal delivery; after it runs a second interrupt
// falls back to the default behaviour and terminates the process.
//
// Example usage:
//
//	ctx, cleanup := common.WithInterrupt(context.Background())
//	defer cleanup()
//	agent, err := store.FindAgentByEmail(ctx, email)
func WithInterrupt(parent context.Context) (context.Context, func()) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	return ctx, stop
}

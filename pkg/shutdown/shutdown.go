package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// WithSignals returns a context cancelled on the first of sigs, or on
// SIGINT/SIGTERM when none are given.
func WithSignals(parent context.Context, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	if len(sigs) == 0 {
		sigs = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}
	ctx, cancel := context.WithCancel(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)

	go func() {
		defer signal.Stop(ch)
		select {
		case <-ctx.Done():
			return
		case <-ch:
			cancel()
		}
	}()

	return ctx, cancel
}

// Within runs graceful and waits up to timeout for it to return. On timeout
// it calls force and reports false.
func Within(timeout time.Duration, graceful, force func()) bool {
	done := make(chan struct{})
	go func() {
		graceful()
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		return true
	case <-timer.C:
		force()
		return false
	}
}

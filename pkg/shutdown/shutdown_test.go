package shutdown

import (
	"context"
	"syscall"
	"testing"
	"time"
)

func TestWithSignals(t *testing.T) {
	ctx, cancel := WithSignals(context.Background(), syscall.SIGUSR1)
	defer cancel()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGUSR1); err != nil {
		t.Fatalf("kill: %v", err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("context not cancelled by signal")
	}
}

func TestWithin(t *testing.T) {
	t.Run("graceful finishes", func(t *testing.T) {
		forced := false
		ok := Within(time.Second, func() {}, func() { forced = true })
		if !ok || forced {
			t.Fatalf("expected graceful stop, ok=%v forced=%v", ok, forced)
		}
	})

	t.Run("timeout forces", func(t *testing.T) {
		release := make(chan struct{})
		forced := false
		ok := Within(10*time.Millisecond, func() { <-release }, func() {
			forced = true
			close(release)
		})
		if ok || !forced {
			t.Fatalf("expected forced stop, ok=%v forced=%v", ok, forced)
		}
	})
}

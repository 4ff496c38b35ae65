package app

import (
	"time"

	"go.uber.org/zap"
)

// Hooks captures commit-level observability events.
type Hooks interface {
	ObserveOperation(name, status string, dur time.Duration)
	IncConflict(name string)
	IncRetry(name string)
}

type noopHooks struct{}

func (noopHooks) ObserveOperation(string, string, time.Duration) {}
func (noopHooks) IncConflict(string)                             {}
func (noopHooks) IncRetry(string)                                {}

type logHooks struct {
	log *zap.Logger
}

// NewLogHooks reports commit outcomes through the given logger.
func NewLogHooks(log *zap.Logger) Hooks {
	if log == nil {
		return noopHooks{}
	}
	return &logHooks{log: log.Named("cart.hooks")}
}

func (h *logHooks) ObserveOperation(name, status string, dur time.Duration) {
	h.log.Debug("cart operation",
		zap.String("op", name),
		zap.String("status", status),
		zap.Duration("duration", dur),
	)
}

func (h *logHooks) IncConflict(name string) {
	h.log.Info("cart version conflict", zap.String("op", name))
}

func (h *logHooks) IncRetry(name string) {
	h.log.Info("cart operation retried", zap.String("op", name))
}

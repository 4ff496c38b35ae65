package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"CART_STORE", "CART_LOOKUP_TIMEOUT", "GRPC_PORT", "CORS_ALLOWED_ORIGINS", "OTEL_ENABLED", "STORE_CURRENCY"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.CartStore != "postgres" {
		t.Fatalf("expected postgres store, got %q", cfg.CartStore)
	}
	if cfg.LookupTimeout != 2*time.Second || cfg.LookupConcurrency != 10 || cfg.CommitMaxAttempts != 3 {
		t.Fatalf("unexpected commit defaults: %+v", cfg)
	}
	if cfg.StoreCurrency != "AED" {
		t.Fatalf("expected AED, got %q", cfg.StoreCurrency)
	}
	if cfg.GRPCPort != 8081 {
		t.Fatalf("expected grpc port 8081, got %d", cfg.GRPCPort)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSAllowedOrigins)
	}
	if cfg.Tracing.Enabled {
		t.Fatalf("tracing must be off by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CART_STORE", "Redis")
	t.Setenv("CART_LOOKUP_TIMEOUT", "750ms")
	t.Setenv("CART_COMMIT_MAX_ATTEMPTS", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://veloria.ae, https://admin.veloria.ae,")
	t.Setenv("OTEL_ENABLED", "yes")
	t.Setenv("STORE_CURRENCY", " usd")

	cfg := Load()
	if cfg.CartStore != "redis" {
		t.Fatalf("expected redis store, got %q", cfg.CartStore)
	}
	if cfg.StoreCurrency != "USD" {
		t.Fatalf("expected USD, got %q", cfg.StoreCurrency)
	}
	if cfg.LookupTimeout != 750*time.Millisecond {
		t.Fatalf("expected 750ms, got %s", cfg.LookupTimeout)
	}
	if cfg.CommitMaxAttempts != 5 {
		t.Fatalf("expected 5 attempts, got %d", cfg.CommitMaxAttempts)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://admin.veloria.ae" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSAllowedOrigins)
	}
	if !cfg.Tracing.Enabled {
		t.Fatalf("expected tracing enabled")
	}
}

func TestBadValuesFallBack(t *testing.T) {
	t.Setenv("CART_LOOKUP_TIMEOUT", "soon")
	t.Setenv("GRPC_PORT", "abc")

	cfg := Load()
	if cfg.LookupTimeout != 2*time.Second || cfg.GRPCPort != 8081 {
		t.Fatalf("expected defaults, got %s / %d", cfg.LookupTimeout, cfg.GRPCPort)
	}
}

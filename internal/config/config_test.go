package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "SNAPSHOT_BACKEND", "ORDER_BACKEND", "CHECKOUT_EMAIL_REQUIRED", "CORS_ORIGINS", "SESSION_IDLE_TIMEOUT_SECONDS"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()

	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.HTTPAddr)
	}
	if cfg.SnapshotBackend != SnapshotMemory || cfg.OrderBackend != OrdersLocal {
		t.Fatalf("unexpected backends %q/%q", cfg.SnapshotBackend, cfg.OrderBackend)
	}
	if cfg.EmailRequired {
		t.Fatalf("email should be optional by default")
	}
	if cfg.SessionIdleTimeout != 30*time.Minute {
		t.Fatalf("unexpected idle timeout %v", cfg.SessionIdleTimeout)
	}
	if len(cfg.CORSOrigins) != 1 {
		t.Fatalf("unexpected cors origins %v", cfg.CORSOrigins)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SNAPSHOT_BACKEND", "redis")
	t.Setenv("CHECKOUT_EMAIL_REQUIRED", "true")
	t.Setenv("SNAPSHOT_TTL_SECONDS", "60")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "not-a-number")

	cfg := FromEnv()

	if cfg.SnapshotBackend != SnapshotRedis {
		t.Fatalf("expected redis backend, got %q", cfg.SnapshotBackend)
	}
	if !cfg.EmailRequired {
		t.Fatalf("expected strict email mode")
	}
	if cfg.SnapshotTTL != time.Minute {
		t.Fatalf("expected 60s ttl, got %v", cfg.SnapshotTTL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSOrigins)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("invalid duration should fall back to default, got %v", cfg.ShutdownTimeout)
	}
}

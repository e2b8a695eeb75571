package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		for _, key := range []string{"APP_ENV", "APP_HOST", "APP_PORT", "EVENTS_ENABLED"} {
			t.Setenv(key, "")
		}
		cfg := Load()
		if cfg.Env != "dev" {
			t.Errorf("Env = %q, want dev", cfg.Env)
		}
		if cfg.Host != "" {
			t.Errorf("Host = %q, want empty", cfg.Host)
		}
		if cfg.Port != "8000" {
			t.Errorf("Port = %q, want 8000", cfg.Port)
		}
		if cfg.EventsEnabled {
			t.Error("EventsEnabled = true, want false")
		}
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("APP_ENV", "prod")
		t.Setenv("APP_HOST", "127.0.0.1")
		t.Setenv("APP_PORT", "9090")
		t.Setenv("EVENTS_ENABLED", "true")
		cfg := Load()
		if cfg.Env != "prod" || cfg.Host != "127.0.0.1" || cfg.Port != "9090" || !cfg.EventsEnabled {
			t.Errorf("unexpected config %+v", cfg)
		}
	})
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "1m")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 1 {
		t.Errorf("Capacity = %d, want 1", cfg.Capacity)
	}
	if cfg.RefillTokens != 1 {
		t.Errorf("RefillTokens = %d, want 1", cfg.RefillTokens)
	}
	// TTL is raised to cover at least five refill intervals.
	if want := 5 * time.Minute; cfg.TTL != want {
		t.Errorf("TTL = %v, want %v", cfg.TTL, want)
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_STR", "")
	if v := getenv("X_STR", "fallback"); v != "fallback" {
		t.Errorf("getenv = %q, want fallback", v)
	}
	t.Setenv("X_BOOL", "yes")
	if !envBool("X_BOOL", false) {
		t.Error("envBool(yes) = false")
	}
	t.Setenv("X_BOOL", "junk")
	if envBool("X_BOOL", false) {
		t.Error("envBool(junk) did not fall back")
	}
	t.Setenv("X_INT", "42")
	if n := envInt("X_INT", 0); n != 42 {
		t.Errorf("envInt = %d, want 42", n)
	}
	t.Setenv("X_DUR", "250ms")
	if d := envDur("X_DUR", time.Second); d != 250*time.Millisecond {
		t.Errorf("envDur = %v, want 250ms", d)
	}
}

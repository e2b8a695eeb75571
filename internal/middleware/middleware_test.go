package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/River-03/shopping-list-api/internal/config"
)

// Without a Redis client both middlewares must be transparent pass-throughs.
func TestMiddlewaresPassThroughWithoutRedis(t *testing.T) {
	e := echo.New()
	e.Use(NewTokenBucket(config.RateLimitConfig{Enabled: true, Capacity: 1, RefillTokens: 1, RefillInterval: time.Second, TTL: time.Minute}, nil))
	e.Use(NewRedisCache(config.CacheConfig{Enabled: true, TTL: time.Minute, Prefix: "cache", MaxBodyBytes: 1 << 20}, nil))
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
			t.Fatalf("request %d: status=%d body=%q", i, rec.Code, rec.Body.String())
		}
		if rec.Header().Get("X-RateLimit-Limit") != "" {
			t.Error("rate limit headers set without a Redis client")
		}
	}
}

func TestBuildRateKey(t *testing.T) {
	e := echo.New()
	e.GET("/items", func(c echo.Context) error { return nil })

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req.RemoteAddr = "10.0.0.7:1234"
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/items")

	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip"}
	if got, want := buildRateKey(cfg, c), "rl:ip:10.0.0.7"; got != want {
		t.Errorf("ip key = %q, want %q", got, want)
	}

	cfg.KeyStrategy = "ip_route"
	if got, want := buildRateKey(cfg, c), "rl:ip:10.0.0.7:route:GET /items"; got != want {
		t.Errorf("ip_route key = %q, want %q", got, want)
	}
}

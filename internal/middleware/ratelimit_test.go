package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/moviestream/catalog-admin/internal/config"
)

func newLimitedEcho(t *testing.T, cfg config.RateLimitConfig) *echo.Echo {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	e := echo.New()
	e.Use(NewFixedWindow(cfg, rdb))
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	return e
}

func hit(e *echo.Echo) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestFixedWindowAllowsUpToLimit(t *testing.T) {
	e := newLimitedEcho(t, config.RateLimitConfig{
		Enabled: true, Limit: 3, Window: time.Minute, Prefix: "rl",
	})

	for i := 0; i < 3; i++ {
		if rec := hit(e); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rec.Code)
		}
	}
	rec := hit(e)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatal("429 response should carry Retry-After")
	}
}

func TestFixedWindowSetsRemainingHeader(t *testing.T) {
	e := newLimitedEcho(t, config.RateLimitConfig{
		Enabled: true, Limit: 5, Window: time.Minute, Prefix: "rl",
	})

	rec := hit(e)
	if got := rec.Header().Get("X-RateLimit-Remaining"); got != "4" {
		t.Fatalf("X-RateLimit-Remaining = %q, want 4", got)
	}
}

func TestDisabledLimiterPassesThrough(t *testing.T) {
	e := echo.New()
	e.Use(NewFixedWindow(config.RateLimitConfig{Enabled: false}, nil))
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	for i := 0; i < 10; i++ {
		if rec := hit(e); rec.Code != http.StatusOK {
			t.Fatalf("pass-through limiter blocked request %d", i+1)
		}
	}
}

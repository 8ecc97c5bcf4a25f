package httpapp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/devlink-app/devlink/internal/auth"
	"github.com/devlink-app/devlink/internal/config"
	"github.com/devlink-app/devlink/internal/github"
	"github.com/devlink-app/devlink/internal/rate"
	"github.com/devlink-app/devlink/internal/store/sqlite"
)

type allowAllLimiter struct{}

func (a allowAllLimiter) Allow(key string, limit int, window time.Duration) (bool, time.Duration) {
	return true, 0
}

func newBareServer(t *testing.T, dsn string) *Server {
	t.Helper()
	st, err := sqlite.Open(dsn)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	cfg := config.Config{
		JWTSecret:  "test-secret",
		TokenTTL:   time.Hour,
		RateLimits: config.RateLimits{RegisterPerMinute: 100, PostPerMinute: 100, CommentPerMinute: 100},
	}
	authSvc := auth.NewService(cfg.JWTSecret, cfg.TokenTTL)
	return NewServer(st, authSvc, allowAllLimiter{}, github.NewClient("", ""), cfg)
}

func TestLivenessJSON(t *testing.T) {
	server := newBareServer(t, "file:http_liveness?mode=memory&cache=shared")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	server.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("json parse: %v", err)
	}
	if payload["msg"] != "API running" {
		t.Fatalf("unexpected payload: %v", payload)
	}
}

func TestUnknownRoute(t *testing.T) {
	server := newBareServer(t, "file:http_unknown?mode=memory&cache=shared")

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	resp := httptest.NewRecorder()
	server.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestUnsupportedMethod(t *testing.T) {
	server := newBareServer(t, "file:http_method?mode=memory&cache=shared")

	req := httptest.NewRequest(http.MethodPatch, "/api/posts", nil)
	resp := httptest.NewRecorder()
	server.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	resp = httptest.NewRecorder()
	server.ServeHTTP(resp, req)
	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.Code)
	}
}

func TestRegisterRateLimited(t *testing.T) {
	server := newBareServerWithLimiter(t, "file:http_rl?mode=memory&cache=shared", rate.NewMemory(), 1)

	body := `{"name":"Alice","email":"alice@example.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	server.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	body = `{"name":"Bob","email":"bob@example.com","password":"secret1"}`
	req = httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	server.ServeHTTP(resp, req)
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.Code)
	}
	if resp.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
}

func newBareServerWithLimiter(t *testing.T, dsn string, limiter rate.Limiter, registerLimit int) *Server {
	t.Helper()
	st, err := sqlite.Open(dsn)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	cfg := config.Config{
		JWTSecret:  "test-secret",
		TokenTTL:   time.Hour,
		RateLimits: config.RateLimits{RegisterPerMinute: registerLimit, PostPerMinute: 100, CommentPerMinute: 100},
	}
	authSvc := auth.NewService(cfg.JWTSecret, cfg.TokenTTL)
	return NewServer(st, authSvc, limiter, github.NewClient("", ""), cfg)
}

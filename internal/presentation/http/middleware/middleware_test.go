package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/distributor-orders/pkg/logger"
)

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRateLimiterConfigFromWindow(t *testing.T) {
	tests := []struct {
		name      string
		requests  int
		window    int
		wantRate  float64
		wantBurst int
	}{
		{"per minute", 60, 60, 1, 60},
		{"per second", 5, 1, 5, 5},
		{"zero window keeps defaults", 100, 0, 10, 20},
		{"zero requests keeps defaults", 0, 60, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := RateLimiterConfigFromWindow(tt.requests, tt.window)
			if cfg.RequestsPerSecond != tt.wantRate || cfg.BurstSize != tt.wantBurst {
				t.Errorf("got rate %v burst %d, want %v/%d", cfg.RequestsPerSecond, cfg.BurstSize, tt.wantRate, tt.wantBurst)
			}
		})
	}
}

func TestClientRateLimiter_BlocksAfterBurst(t *testing.T) {
	rl := NewClientRateLimiter(RateLimiterConfig{
		RequestsPerSecond: 0.001,
		BurstSize:         2,
		CleanupInterval:   time.Minute,
		EntryTTL:          time.Minute,
	})
	defer rl.Stop()

	r := newTestRouter(rl.Middleware())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if i == 2 && w.Header().Get("Retry-After") != "1" {
			t.Errorf("missing Retry-After on limited response")
		}
	}

	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("codes = %v, want %v", codes, want)
		}
	}

	// a different client has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("second client status = %d", w.Code)
	}

	if got := rl.Stats()["active_clients"]; got != 2 {
		t.Errorf("active_clients = %v, want 2", got)
	}
}

func TestClientRateLimiter_CleanupDropsStaleEntries(t *testing.T) {
	rl := NewClientRateLimiter(RateLimiterConfig{
		RequestsPerSecond: 1,
		BurstSize:         1,
		CleanupInterval:   time.Hour,
		EntryTTL:          time.Millisecond,
	})
	defer rl.Stop()

	rl.getLimiter("10.0.0.1")
	time.Sleep(5 * time.Millisecond)
	rl.cleanup()

	if got := rl.Stats()["active_clients"]; got != 0 {
		t.Errorf("active_clients = %v, want 0", got)
	}
	rl.Stop()
}

func TestLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New("debug", "json", &buf)
	r := newTestRouter(LoggerMiddleware(log))

	req := httptest.NewRequest(http.MethodGet, "/ping?x=1", nil)
	req.Header.Set("X-Request-ID", "abcdef12-3456-7890-abcd-ef1234567890")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "abcdef12-3456-7890-abcd-ef1234567890" {
		t.Errorf("X-Request-ID = %q", got)
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["level"] != "info" || entry["path"] != "/ping?x=1" || entry["method"] != "GET" {
		t.Errorf("entry = %v", entry)
	}
	if entry["status"] != float64(http.StatusOK) {
		t.Errorf("status = %v", entry["status"])
	}
}

func TestLoggerMiddleware_GeneratesRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRouter(LoggerMiddleware(logger.New("info", "json", &buf)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated request id")
	}
	if !strings.Contains(buf.String(), `"level":"warning"`) {
		t.Errorf("404 should log at warning, got %s", buf.String())
	}
}

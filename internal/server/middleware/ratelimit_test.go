package middleware

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(t *testing.T, rate int, window time.Duration) (*RateLimiter, *time.Time) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	limiter := NewRateLimiter(rate, window, logger)
	t.Cleanup(limiter.Stop)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	return limiter, &now
}

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("Requests over limit are denied", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 3, time.Minute)

		for i := 0; i < 3; i++ {
			allowed, _ := limiter.Allow("192.168.1.2")
			assert.True(t, allowed, fmt.Sprintf("request %d should be allowed", i+1))
		}

		allowed, retryAfter := limiter.Allow("192.168.1.2")
		assert.False(t, allowed, "request over limit should be denied")
		assert.Equal(t, time.Minute, retryAfter)
	})

	t.Run("Different keys are tracked separately", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 1, time.Minute)

		allowed, _ := limiter.Allow("10.0.0.1")
		assert.True(t, allowed)
		allowed, _ = limiter.Allow("10.0.0.1")
		assert.False(t, allowed)

		allowed, _ = limiter.Allow("10.0.0.2")
		assert.True(t, allowed)
	})

	t.Run("Tokens refill after window expires", func(t *testing.T) {
		limiter, now := newTestLimiter(t, 2, time.Minute)

		limiter.Allow("k")
		limiter.Allow("k")
		allowed, _ := limiter.Allow("k")
		assert.False(t, allowed)

		*now = now.Add(30 * time.Second)
		allowed, retryAfter := limiter.Allow("k")
		assert.False(t, allowed)
		assert.Equal(t, 30*time.Second, retryAfter)

		*now = now.Add(31 * time.Second)
		allowed, _ = limiter.Allow("k")
		assert.True(t, allowed, "tokens should be refilled")
	})

	t.Run("Old buckets are cleaned up", func(t *testing.T) {
		limiter, now := newTestLimiter(t, 2, time.Minute)

		limiter.Allow("k")
		*now = now.Add(3 * time.Minute)
		limiter.cleanupOldBuckets()

		limiter.mu.Lock()
		defer limiter.mu.Unlock()
		assert.Empty(t, limiter.buckets)
	})
}

func TestRateLimiter_Middleware(t *testing.T) {
	limiter, _ := newTestLimiter(t, 2, time.Minute)

	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "192.168.1.1:5000"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// Другой порт того же клиента делит лимит
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "192.168.1.1:6000"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "too many requests")
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		expected   string
	}{
		{name: "RemoteAddr with port", remoteAddr: "192.168.1.1:12345", expected: "192.168.1.1"},
		{name: "RemoteAddr without port", remoteAddr: "192.168.1.1", expected: "192.168.1.1"},
		{
			name:       "X-Forwarded-For list",
			remoteAddr: "10.0.0.1:1",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"},
			expected:   "203.0.113.7",
		},
		{
			name:       "X-Real-IP",
			remoteAddr: "10.0.0.1:1",
			headers:    map[string]string{"X-Real-IP": "198.51.100.4"},
			expected:   "198.51.100.4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, getClientIP(req))
		})
	}
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"news-summarizer-api/pkg/featureflags"
)

func serve(handler http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/analyze", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(3, 1*time.Second)

	assert.True(t, rl.Allow("127.0.0.1"))
	assert.True(t, rl.Allow("127.0.0.1"))
	assert.True(t, rl.Allow("127.0.0.1"))

	assert.False(t, rl.Allow("127.0.0.1"))

	// Different IP has its own bucket
	assert.True(t, rl.Allow("192.168.1.1"))

	time.Sleep(1100 * time.Millisecond)

	assert.True(t, rl.Allow("127.0.0.1"))
}

func TestNewRateLimiter_ClampsBadValues(t *testing.T) {
	rl := NewRateLimiter(0, 0)

	assert.Equal(t, 1, rl.limit)
	assert.Equal(t, time.Minute, rl.window)
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
}

func TestRateLimitMiddleware_AllowsRequestsUnderLimit(t *testing.T) {
	handler := RateLimitMiddleware(NewRateLimiter(5, time.Minute))(okHandler())

	for i := 0; i < 5; i++ {
		rec := serve(handler, "127.0.0.1:1234")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
		assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimitMiddleware_Returns429ForExceededLimit(t *testing.T) {
	handler := RateLimitMiddleware(NewRateLimiter(2, time.Minute))(okHandler())

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, serve(handler, "127.0.0.1:1234").Code)
	}

	rec := serve(handler, "127.0.0.1:1234")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"Rate limit exceeded. Please try again later."}`, rec.Body.String())
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}

func TestRateLimitMiddleware_UsesIPAddressForLimiting(t *testing.T) {
	handler := RateLimitMiddleware(NewRateLimiter(1, time.Minute))(okHandler())

	assert.Equal(t, http.StatusOK, serve(handler, "127.0.0.1:1234").Code)
	// Same host, different source port
	assert.Equal(t, http.StatusTooManyRequests, serve(handler, "127.0.0.1:9999").Code)
	assert.Equal(t, http.StatusOK, serve(handler, "192.168.1.1:5678").Code)
}

func TestRateLimitMiddleware_RefillsAfterWindow(t *testing.T) {
	handler := RateLimitMiddleware(NewRateLimiter(1, 100*time.Millisecond))(okHandler())

	assert.Equal(t, http.StatusOK, serve(handler, "127.0.0.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(handler, "127.0.0.1:1234").Code)

	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, http.StatusOK, serve(handler, "127.0.0.1:1234").Code)
}

func TestRateLimitMiddleware_DisabledByFlag(t *testing.T) {
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.RateLimitEnabled: false,
	})
	handler := FeatureFlagsMiddleware(flags)(RateLimitMiddleware(NewRateLimiter(1, time.Minute))(okHandler()))

	for i := 0; i < 3; i++ {
		rec := serve(handler, "127.0.0.1:1234")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestFeatureFlagsMiddleware_InjectsManager(t *testing.T) {
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.SequentialInference: true,
	})

	var seen bool
	handler := FeatureFlagsMiddleware(flags)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = featureflags.IsEnabled(r.Context(), featureflags.SequentialInference)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	assert.True(t, seen)
	assert.False(t, featureflags.IsEnabled(context.Background(), featureflags.SequentialInference))
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		setupReq   func(*http.Request)
		expectedIP string
	}{
		{
			name: "uses the client end of X-Forwarded-For",
			setupReq: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "203.0.113.1, 198.51.100.2")
				r.RemoteAddr = "10.0.0.1:1234"
			},
			expectedIP: "203.0.113.1",
		},
		{
			name: "uses X-Real-IP header",
			setupReq: func(r *http.Request) {
				r.Header.Set("X-Real-IP", "203.0.113.1")
				r.RemoteAddr = "10.0.0.1:1234"
			},
			expectedIP: "203.0.113.1",
		},
		{
			name: "falls back to RemoteAddr host",
			setupReq: func(r *http.Request) {
				r.RemoteAddr = "192.168.1.1:1234"
			},
			expectedIP: "192.168.1.1",
		},
		{
			name: "RemoteAddr without port",
			setupReq: func(r *http.Request) {
				r.RemoteAddr = "192.168.1.1"
			},
			expectedIP: "192.168.1.1",
		},
		{
			name: "prefers X-Forwarded-For over X-Real-IP",
			setupReq: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "203.0.113.1")
				r.Header.Set("X-Real-IP", "198.51.100.1")
			},
			expectedIP: "203.0.113.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			tt.setupReq(req)

			assert.Equal(t, tt.expectedIP, extractIP(req))
		})
	}
}

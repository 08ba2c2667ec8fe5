package restapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddlewareAllowsWithinLimit(t *testing.T) {
	middleware := NewRateLimitMiddleware(5, time.Second)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/search/street?street=san", nil)
		req.RemoteAddr = "203.0.113.10:51000"

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}
}

func TestRateLimitMiddlewareRejectsBurstOverflow(t *testing.T) {
	middleware := NewRateLimitMiddleware(1, time.Second)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search/street?street=san", nil)
	req.RemoteAddr = "203.0.113.10:51000"
	handler.ServeHTTP(first, req)
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/search/street?street=san", nil)
	req.RemoteAddr = "203.0.113.10:51001" // same client IP, different port
	handler.ServeHTTP(second, req)

	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))
	assert.Contains(t, second.Body.String(), "Rate limit exceeded")
}

func TestRateLimitMiddlewareIsolatesClients(t *testing.T) {
	middleware := NewRateLimitMiddleware(1, time.Second)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search/street?street=san", nil)
	req.RemoteAddr = "203.0.113.10:51000"
	handler.ServeHTTP(first, req)
	require.Equal(t, http.StatusOK, first.Code)

	other := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/search/street?street=san", nil)
	req.RemoteAddr = "203.0.113.99:51000"
	handler.ServeHTTP(other, req)

	assert.Equal(t, http.StatusOK, other.Code)
}

func TestRateLimitMiddlewareNegativeRateDisablesLimiting(t *testing.T) {
	middleware := NewRateLimitMiddleware(-1, time.Second)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/search/street?street=san", nil)
		req.RemoteAddr = "203.0.113.10:51000"

		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

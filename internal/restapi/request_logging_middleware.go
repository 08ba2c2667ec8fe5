package restapi

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"mobilefood.datasf.org/internal/logging"
	"mobilefood.datasf.org/internal/metrics"
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// NewRequestLoggingMiddleware creates middleware that logs HTTP requests and
// records request metrics.
func NewRequestLoggingMiddleware(logger *slog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Add logger to context for downstream handlers
			ctx := logging.WithLogger(r.Context(), logger)
			r = r.WithContext(ctx)

			// Wrap response writer to capture status code
			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK, // Default status
			}

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)

			if m != nil {
				m.RequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(wrapped.statusCode)).Inc()
				m.RequestSeconds.WithLabelValues(r.URL.Path).Observe(duration.Seconds())
			}

			logging.LogHTTPRequest(logger,
				r.Method,
				r.URL.Path, // Path without query parameters
				wrapped.statusCode,
				float64(duration.Nanoseconds())/1e6, // Convert to milliseconds
				slog.String("user_agent", r.Header.Get("User-Agent")),
				slog.String("component", "http_server"))
		})
	}
}

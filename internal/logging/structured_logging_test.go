package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStructuredLoggerEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	logger.Info("dataset loaded", "rows", 42)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dataset loaded", entry["msg"])
	assert.Equal(t, float64(42), entry["rows"])
}

func TestNewStructuredLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelWarn)

	logger.Info("should be dropped")
	assert.Empty(t, buf.Bytes())

	logger.Warn("should be kept")
	assert.NotEmpty(t, buf.Bytes())
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogError(logger, "load failed", errors.New("no such file"), slog.String("dataset", "permits.csv"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "load failed", entry["msg"])
	assert.Equal(t, "no such file", entry["error"])
	assert.Equal(t, "permits.csv", entry["dataset"])
}

func TestLogErrorNilLoggerIsSafe(t *testing.T) {
	LogError(nil, "load failed", errors.New("boom"))
}

func TestLogHTTPRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogHTTPRequest(logger, "GET", "/search/applicant", 200, 1.5)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http_request", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/search/applicant", entry["path"])
	assert.Equal(t, float64(200), entry["status"])
}

func TestLoggerContextRoundTrip(t *testing.T) {
	logger := NewStructuredLogger(&bytes.Buffer{}, slog.LevelInfo)

	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	// Without a stored logger, a default is returned rather than nil.
	assert.NotNil(t, FromContext(context.Background()))
}

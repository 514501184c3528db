package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger implements the Logger interface for testing
type MockLogger struct {
	logs []LogEntry
}

type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, LogEntry{Level: "DEBUG", Message: msg, Fields: fields})
}

func (m *MockLogger) Info(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, LogEntry{Level: "INFO", Message: msg, Fields: fields})
}

func (m *MockLogger) Warn(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, LogEntry{Level: "WARN", Message: msg, Fields: fields})
}

func (m *MockLogger) Error(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, LogEntry{Level: "ERROR", Message: msg, Fields: fields})
}

func TestRequestLoggingMiddleware_LogsRequestMethodAndPath(t *testing.T) {
	logger := &MockLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/feed/snapshot?x=1", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Len(t, logger.logs, 1)
	entry := logger.logs[0]
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "Request completed", entry.Message)
	assert.Equal(t, "POST", entry.Fields["method"])
	assert.Equal(t, "/feed/snapshot", entry.Fields["path"])
	assert.Equal(t, http.StatusOK, entry.Fields["status"])
	assert.Contains(t, entry.Fields, "duration_ms")
}

func TestRequestLoggingMiddleware_LogsServerErrors(t *testing.T) {
	logger := &MockLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/feed", nil))

	require.Len(t, logger.logs, 1)
	assert.Equal(t, "ERROR", logger.logs[0].Level)
	assert.Equal(t, http.StatusBadGateway, logger.logs[0].Fields["status"])
}

func TestRequestLoggingMiddleware_IncludesRequestID(t *testing.T) {
	logger := &MockLogger{}
	var seen string
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/feed", nil))

	header := rec.Header().Get("X-Request-ID")
	_, err := uuid.Parse(header)
	require.NoError(t, err)
	assert.Equal(t, header, seen)
	require.Len(t, logger.logs, 1)
	assert.Equal(t, header, logger.logs[0].Fields["request_id"])
}

func TestResponseWriter_CapturesStatusCode(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusNotFound, rw.statusCode)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponseWriter_DefaultsTo200(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	rw.Write([]byte("hello"))

	assert.Equal(t, http.StatusOK, rw.statusCode)
	assert.True(t, rw.written)
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	assert.Equal(t, "", RequestIDFromContext(req.Context()))
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestLoggingRoundTripper_PropagatesRequestID(t *testing.T) {
	logger := &MockLogger{}
	rt := &LoggingRoundTripper{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: r}, nil
		}),
		Logger: logger,
	}

	req := httptest.NewRequest("GET", "https://example.com/feed", nil)
	req = req.WithContext(WithRequestID(req.Context(), "req-1"))

	resp, err := rt.RoundTrip(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, logger.logs, 1)
	assert.Equal(t, "DEBUG", logger.logs[0].Level)
	assert.Equal(t, "req-1", logger.logs[0].Fields["request_id"])
	assert.Equal(t, http.StatusOK, logger.logs[0].Fields["status"])
}

func TestLoggingRoundTripper_LogsFailures(t *testing.T) {
	logger := &MockLogger{}
	rt := &LoggingRoundTripper{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return nil, errors.New("connection reset")
		}),
		Logger: logger,
	}

	_, err := rt.RoundTrip(httptest.NewRequest("GET", "https://example.com/feed", nil))

	require.Error(t, err)
	assert.Equal(t, "WARN", logger.logs[len(logger.logs)-1].Level)
	assert.Equal(t, "connection reset", logger.logs[len(logger.logs)-1].Fields["error"])
}

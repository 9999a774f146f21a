package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-summarizer-api/core/interfaces"
)

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// mockLogger records entries for assertions
type mockLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (m *mockLogger) log(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level, msg, fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.log("debug", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.log("info", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.log("warn", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.log("error", msg, fields) }
func (m *mockLogger) With(map[string]interface{}) interfaces.Logger  { return m }

func TestRequestLoggingMiddleware_AssignsRequestID(t *testing.T) {
	logger := &mockLogger{}
	var ctxID string
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = RequestID(r.Context())
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/api/analyze", nil))

	headerID := rec.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(headerID)
	require.NoError(t, err)
	assert.Equal(t, headerID, ctxID)

	require.Len(t, logger.entries, 2)
	assert.Equal(t, "Request started", logger.entries[0].msg)
	assert.Equal(t, "Request completed", logger.entries[1].msg)
	assert.Equal(t, http.StatusCreated, logger.entries[1].fields["status"])
	assert.Equal(t, headerID, logger.entries[1].fields["request_id"])
}

func TestRequestLoggingMiddleware_ReusesValidIncomingID(t *testing.T) {
	incoming := uuid.New().String()
	handler := RequestLoggingMiddleware(&mockLogger{})(okHandler())

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, incoming, rec.Header().Get(RequestIDHeader))
}

func TestRequestLoggingMiddleware_ReplacesGarbageID(t *testing.T) {
	handler := RequestLoggingMiddleware(&mockLogger{})(okHandler())

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEqual(t, "<script>", rec.Header().Get(RequestIDHeader))
}

func TestRequestLoggingMiddleware_ServerErrorLoggedAsError(t *testing.T) {
	logger := &mockLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/api/analyze", nil))

	last := logger.entries[len(logger.entries)-1]
	assert.Equal(t, "error", last.level)
	assert.Equal(t, http.StatusInternalServerError, last.fields["status"])
}

func TestResponseWriter_DefaultsToOK(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	rw.Write([]byte("body"))
	rw.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusOK, rw.statusCode)
	assert.Equal(t, http.StatusOK, rec.Code)
}

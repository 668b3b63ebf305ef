package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler keeps every log record for assertions.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *recordingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *recordingHandler) WithGroup(_ string) slog.Handler { return h }

func (h *recordingHandler) last(t *testing.T) (slog.Record, map[string]slog.Value) {
	t.Helper()
	h.mu.Lock()
	defer h.mu.Unlock()
	require.NotEmpty(t, h.records)
	rec := h.records[len(h.records)-1]
	attrs := make(map[string]slog.Value)
	rec.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value
		return true
	})
	return rec, attrs
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		next       http.HandlerFunc
		wantStatus int
		wantBytes  int64
		wantLevel  slog.Level
	}{
		{
			name:   "invitation lookup",
			method: http.MethodGet,
			path:   "/api/invitation/test-event-2026",
			next: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"id":1}`))
			},
			wantStatus: http.StatusOK,
			wantBytes:  8,
			wantLevel:  slog.LevelInfo,
		},
		{
			name:   "body without explicit header counts as 200",
			method: http.MethodGet,
			path:   "/api/admin/export",
			next: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("Event,Name"))
			},
			wantStatus: http.StatusOK,
			wantBytes:  10,
			wantLevel:  slog.LevelInfo,
		},
		{
			name:   "validation failure",
			method: http.MethodPost,
			path:   "/api/rsvp/accept",
			next: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			wantStatus: http.StatusBadRequest,
			wantLevel:  slog.LevelInfo,
		},
		{
			name:   "missing admin credential",
			method: http.MethodGet,
			path:   "/api/admin/responses",
			next: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			wantStatus: http.StatusUnauthorized,
			wantLevel:  slog.LevelWarn,
		},
		{
			name:   "throttled login",
			method: http.MethodPost,
			path:   "/api/admin/verify-password",
			next: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			wantStatus: http.StatusTooManyRequests,
			wantLevel:  slog.LevelWarn,
		},
		{
			name:   "store failure",
			method: http.MethodGet,
			path:   "/api/admin/stats",
			next: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.WriteHeader(http.StatusOK)
			},
			wantStatus: http.StatusInternalServerError,
			wantLevel:  slog.LevelError,
		},
		{
			name:   "healthy probe",
			method: http.MethodGet,
			path:   "/health",
			next: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			wantStatus: http.StatusOK,
			wantLevel:  slog.LevelDebug,
		},
		{
			name:   "unhealthy probe",
			method: http.MethodGet,
			path:   "/health",
			next: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			wantStatus: http.StatusServiceUnavailable,
			wantLevel:  slog.LevelError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h recordingHandler
			handler := LoggingMiddleware(slog.New(&h), tt.next)
			req := httptest.NewRequest(tt.method, "http://test"+tt.path, nil)
			req.RemoteAddr = "203.0.113.7:41000"
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			rec, attrs := h.last(t)
			assert.Equal(t, "request", rec.Message)
			assert.Equal(t, tt.wantLevel, rec.Level)
			assert.Equal(t, tt.method, attrs["method"].String())
			assert.Equal(t, tt.path, attrs["path"].String())
			assert.Equal(t, int64(tt.wantStatus), attrs["status"].Int64())
			assert.Equal(t, tt.wantBytes, attrs["bytes"].Int64())
			assert.Equal(t, "203.0.113.7", attrs["client_ip"].String())
			assert.GreaterOrEqual(t, attrs["duration_ms"].Int64(), int64(0))
		})
	}
}

func TestClientIP_without_port(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "198.51.100.2"
	assert.Equal(t, "198.51.100.2", clientIP(req))
}

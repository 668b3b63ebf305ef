package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventrsvp/internal/delivery/http/helpers"
	"eventrsvp/internal/domain"
)

// fakeAccessGate accepts exactly one token.
type fakeAccessGate struct {
	validToken string
	lastToken  string
}

func (f *fakeAccessGate) Verify(_ context.Context, _ string) bool { return false }

func (f *fakeAccessGate) Login(_ context.Context, _ string) (string, time.Time, error) {
	return "", time.Time{}, domain.ErrUnauthorized
}

func (f *fakeAccessGate) Authenticate(_ context.Context, token string) error {
	f.lastToken = token
	if token != f.validToken {
		return errors.New("bad token")
	}
	return nil
}

func TestAdminToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{"bearer header", "Bearer abc", "", "abc"},
		{"lowercase scheme", "bearer abc", "", "abc"},
		{"cookie", "", "from-cookie", "from-cookie"},
		{"header wins over cookie", "Bearer abc", "from-cookie", "abc"},
		{"non bearer header", "Basic abc", "from-cookie", ""},
		{"nothing", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/responses", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: AdminCookieName, Value: tt.cookie})
			}
			assert.Equal(t, tt.want, AdminToken(req))
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		authHeader string
		cookie     string
		wantStatus int
		nextCalled bool
	}{
		{"valid bearer token", "Bearer good", "", http.StatusOK, true},
		{"valid cookie", "", "good", http.StatusOK, true},
		{"missing credential", "", "", http.StatusUnauthorized, false},
		{"empty token after Bearer", "Bearer ", "", http.StatusUnauthorized, false},
		{"rejected token", "Bearer forged", "", http.StatusUnauthorized, false},
		{"rejected cookie", "", "forged", http.StatusUnauthorized, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := &fakeAccessGate{validToken: "good"}
			var called bool
			next := func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			}
			handler := RequireAdmin(gate, logger)(next)

			req := httptest.NewRequest(http.MethodGet, "/api/admin/responses", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: AdminCookieName, Value: tt.cookie})
			}
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, called)
			if !tt.nextCalled {
				var body helpers.APIError
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, helpers.ErrCodeUnauthorized, body.Code)
			}
		})
	}
}

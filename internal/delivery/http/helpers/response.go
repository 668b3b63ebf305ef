package helpers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventrsvp/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeUnauthorized  = "unauthorized"
	ErrCodeNotFound      = "not_found"
	ErrCodeConflict      = "conflict"
	ErrCodeRateLimited   = "rate_limited"
	ErrCodeInternalError = "internal_error"
)

// internalErrorMessage is the only message a 500 response ever carries.
const internalErrorMessage = "internal server error"

// APIError is the body of every error response.
// swagger:model APIError
type APIError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// MessageResponse is the body of RSVP and delete confirmations.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
	Changes *int64 `json:"changes,omitempty"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes data.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an APIError with the given code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSON(w, statusCode, APIError{Error: message, Code: code})
}

// WriteInternalError logs err with the request path and method and writes an opaque 500.
func WriteInternalError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, internalErrorMessage)
}

// WriteDomainError maps a service error onto a status code. notFoundMessage
// replaces the message for ErrNotFound; other client errors expose the wrapped
// detail with its sentinel prefix removed. Anything unclassified is a 500.
func WriteDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, publicMessage(err, domain.ErrInvalidInput))
	case errors.Is(err, domain.ErrNotFound):
		msg := notFoundMessage
		if msg == "" {
			msg = publicMessage(err, domain.ErrNotFound)
		}
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, msg)
	case errors.Is(err, domain.ErrConflict):
		WriteJSONError(w, http.StatusConflict, ErrCodeConflict, publicMessage(err, domain.ErrConflict))
	case errors.Is(err, domain.ErrUnauthorized):
		WriteJSONError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrRateLimited):
		WriteJSONError(w, http.StatusTooManyRequests, ErrCodeRateLimited, "too many requests")
	default:
		WriteInternalError(w, r, logger, err)
	}
}

// publicMessage returns the detail wrapped around sentinel, capitalized.
func publicMessage(err, sentinel error) string {
	if err == sentinel {
		return sentinel.Error()
	}
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	if msg == "" {
		return sentinel.Error()
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

package domain

import "errors"

// Sentinel errors shared by repositories, services and the HTTP layer.
// Any other error reaching a controller is treated as a storage failure.
var (
	// ErrInvalidInput is returned when required input is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a looked-up record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique key is already taken.
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized is returned when an admin credential is missing, invalid or expired.
	ErrUnauthorized = errors.New("unauthorized")
)

// ErrRateLimited is returned when a caller exceeds the allowed request rate.
var ErrRateLimited = errors.New("rate limited")

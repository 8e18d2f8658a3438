// Package common defines shared constants and sentinel errors used across
// the ship management backend. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
	ErrorConflict = errors.New("conflict")

	// Validation errors (malformed input, bad code format).
	ErrorValidation = errors.New("validation failed")

	// Auth errors.
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")

	// One-time code errors.
	ErrCodeMismatch = errors.New("verification code incorrect or expired")
	ErrTooFrequent  = errors.New("too frequent, try again later")

	// External bot-challenge rejected or unreachable.
	ErrExternalVerification = errors.New("external verification failed")
)

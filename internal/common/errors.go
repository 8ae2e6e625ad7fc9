// Package common defines shared sentinel errors used across the client layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors, raised before any network call.
	ErrValidation = errors.New("validation error")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")

	// Transport errors (no connectivity, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// Local persistence errors.
	ErrStorage = errors.New("storage error")
)

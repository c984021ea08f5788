// Package common defines shared sentinel errors used across the FileVault
// core and CLI layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound           = errors.New("not found")
	ErrDuplicateID        = errors.New("duplicate id")
	ErrInvalidDestination = errors.New("invalid destination")

	// Gate-level errors (non-fatal flow control).
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrPinMismatch          = errors.New("incorrect pin")
	ErrPinsDoNotMatch       = errors.New("pins do not match")
	ErrNoPinConfigured      = errors.New("no pin configured")
	ErrInvalidPinFormat     = errors.New("pin must be 4 digits")

	// Persistence errors (best-effort; logged, not surfaced to the user).
	ErrPersistence = errors.New("persistence failure")

	// Collaborator errors.
	ErrShareUnavailable = errors.New("no share surface available")
)

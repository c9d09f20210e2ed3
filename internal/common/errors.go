// Package common defines shared constants and sentinel errors used across
// the StudyHub client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors, raised locally before any collaborator call.
	ErrorInvalidInput   = errors.New("invalid input")
	ErrNotVerified      = errors.New("email not verified")
	ErrMissingCode      = errors.New("verification code required")
	ErrTermsNotAccepted = errors.New("terms not accepted")
	ErrEmptyName        = errors.New("file name cannot be empty")

	// Collaborator errors, mapped from response status at the transport
	// boundary.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorNotFound     = errors.New("not found")
	ErrorConflict     = errors.New("already exists")
	ErrorInternal     = errors.New("internal error")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

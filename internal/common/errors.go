// Package common defines shared sentinel errors and small crypto/rand helpers
// used across the service. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Credential lifecycle errors.
	ErrorWeakPassword       = errors.New("weak password")
	ErrorEmailTaken         = errors.New("email already registered")
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorEmailNotFound      = errors.New("email not found")
	ErrorInvalidToken       = errors.New("invalid token")

	// Access-token errors (JWT verification).
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidAccessToken = errors.New("invalid access token")
)

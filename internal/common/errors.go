// Package common defines shared constants and sentinel errors used across
// client and server layers of palace. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrStore    = errors.New("store error")

	// Service-level errors.
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("user with this email already exists")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")

	// Auth errors. Both satisfy errors.Is(err, ErrUnauthorized).
	ErrInvalidCredentials = &AuthError{Message: "invalid email or password"}
	ErrInvalidToken       = &AuthError{Message: "invalid token"}
)

// AuthError is an unauthorized outcome with a fixed, user-facing message.
// The message is identical for every cause that shares it so callers cannot
// tell an unknown account from a wrong password.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// Is reports ErrUnauthorized as a match so transports only need to check
// the category.
func (e *AuthError) Is(target error) bool {
	return target == ErrUnauthorized
}

// ValidationError describes malformed input with per-field detail.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns an empty ValidationError ready for Add.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a problem with field. The first message for a field wins.
func (e *ValidationError) Add(field, msg string) {
	if _, ok := e.Fields[field]; ok {
		return
	}
	e.Fields[field] = msg
}

// OrNil returns e when it holds at least one field problem, nil otherwise.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

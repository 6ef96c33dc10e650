package services

import "errors"

// ErrNotFound covers both missing resources and resources owned by
// someone else, so a caller cannot probe for existence.
var ErrNotFound = errors.New("resource not found")

// ValidationError is malformed, missing or conflicting input, rejected
// before any mutation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

// AuthError is a credential failure: bad login, disabled account, wrong
// old password. The message is deliberately generic.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return e.Reason
}

func NewAuthError(reason string) error {
	return &AuthError{Reason: reason}
}

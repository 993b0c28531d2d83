package domain

import (
	"errors"
	"fmt"
)

// Error categories. Specific errors wrap exactly one of these so callers
// can classify them with errors.Is.
var (
	ErrValidation       = errors.New("validation failed")
	ErrUnauthenticated  = errors.New("not authenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Validation errors
var (
	ErrSelfSwipe        = fmt.Errorf("%w: invalid self-swipe", ErrValidation)
	ErrInvalidSwipeType = fmt.Errorf("%w: swipe type must be LIKE or PASS", ErrValidation)
	ErrInvalidRole      = fmt.Errorf("%w: role must be clinic or worker", ErrValidation)
	ErrInvalidInput     = fmt.Errorf("%w: invalid input", ErrValidation)
	ErrEmptyMessage     = fmt.Errorf("%w: message content is empty", ErrValidation)
	ErrMessageTooLong   = fmt.Errorf("%w: message content is too long", ErrValidation)
)

// Authentication errors
var (
	ErrNotAuthenticated   = fmt.Errorf("%w: viewer profile cannot be resolved", ErrUnauthenticated)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthenticated)
	ErrInvalidToken       = fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	ErrSessionNotFound    = fmt.Errorf("%w: session not found", ErrUnauthenticated)
	ErrSessionExpired     = fmt.Errorf("%w: session expired", ErrUnauthenticated)
)

// Authorization errors
var (
	ErrNotMatchParticipant = fmt.Errorf("%w: profile is not a party of this match", ErrForbidden)
)

// Not found errors
var (
	ErrProfileNotFound = fmt.Errorf("%w: profile not found", ErrNotFound)
	ErrSwipeNotFound   = fmt.Errorf("%w: swipe not found", ErrNotFound)
	ErrMatchNotFound   = fmt.Errorf("%w: match not found", ErrNotFound)
)

// Conflict errors
var (
	ErrEmailTaken          = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrMatchAlreadyExists  = fmt.Errorf("%w: match already exists", ErrConflict)
	ErrMatchClosed         = fmt.Errorf("%w: match is closed", ErrConflict)
	ErrProfileIncomplete   = fmt.Errorf("%w: profile is incomplete", ErrConflict)
	ErrRoleChangeForbidden = fmt.Errorf("%w: role cannot be changed", ErrConflict)
)

// ValidationErrors carries per-field violations. It unwraps to ErrValidation.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	return fmt.Sprintf("validation failed: %d invalid field(s)", len(v))
}

func (v ValidationErrors) Unwrap() error {
	return ErrValidation
}

// Unavailable wraps a store failure as retriable.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}

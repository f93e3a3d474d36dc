package service

import (
	"errors"
	"fmt"
	"gigflow-api/internal/repo/repo_errors"
)

// Error kinds. Every error returned by the services matches exactly one of
// them with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidState = errors.New("invalid state")
	ErrUnauthorized = errors.New("unauthorized")
	ErrStore        = errors.New("store error")
)

var (
	ErrGigNotFound = newError(ErrNotFound, "Gig not found")
	ErrBidNotFound = newError(ErrNotFound, "Bid not found")

	ErrNotGigOwner = newError(ErrForbidden, "Forbidden: Not the gig owner")
	ErrGigNotOpen  = newError(ErrInvalidState, "Gig is not open")

	ErrAuthenticationRequired = newError(ErrUnauthorized, "Authentication required")
	ErrInvalidToken           = newError(ErrUnauthorized, "Invalid or expired token")
	ErrInvalidCredentials     = newError(ErrUnauthorized, "Invalid email or password")

	ErrEmailAlreadyExists = newError(ErrValidation, "Email already exists")
)

// kindError carries a caller-facing reason and unwraps to its kind.
type kindError struct {
	kind   error
	reason string
}

func newError(kind error, reason string) error {
	return &kindError{kind: kind, reason: reason}
}

func (e *kindError) Error() string {
	return e.reason
}

func (e *kindError) Unwrap() error {
	return e.kind
}

func validationError(reason string) error {
	return newError(ErrValidation, reason)
}

// storeError keeps the cause for logs; callers only see ErrStore.
func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStore, op, err)
}

// errors raised by checks running inside store transactions
var checkErrors = []error{ErrNotGigOwner, ErrGigNotOpen}

// translateRepoError maps repository failures onto the service error kinds.
func translateRepoError(op string, err error) error {
	switch {
	case errors.Is(err, repo_errors.ErrGigNotFound):
		return ErrGigNotFound
	case errors.Is(err, repo_errors.ErrBidNotFound):
		return ErrBidNotFound
	case errors.Is(err, repo_errors.ErrNotOpen):
		return ErrGigNotOpen
	}

	for _, known := range checkErrors {
		if errors.Is(err, known) {
			return known
		}
	}

	return storeError(op, err)
}

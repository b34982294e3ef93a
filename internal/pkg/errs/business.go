package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrForbidden         = errors.New("access is forbidden")
	ErrIllegalTransition = errors.New("transition is illegal")
	ErrDuplicateField    = errors.New("value is already taken")

	// ErrUnauthenticated is the only authentication failure callers outside
	// the auth flow should see. The specific causes below wrap it so the
	// boundary can answer with one generic message.
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", ErrUnauthenticated)
	ErrInvalidToken       = fmt.Errorf("invalid token: %w", ErrUnauthenticated)
)

// ForbiddenError reports an authenticated actor touching a resource it does
// not own. Owner names whose resource it is, never why access was refused.
type ForbiddenError struct {
	Resource string
	Owner    string
}

func NewForbiddenError(resource, owner string) *ForbiddenError {
	return &ForbiddenError{Resource: resource, Owner: owner}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s belongs to %s", ErrForbidden, e.Resource, e.Owner)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// IllegalTransitionError reports a state change requested from a state that
// does not allow it.
type IllegalTransitionError struct {
	Resource string
	From     string
	Reason   string
}

func NewIllegalTransitionError(resource, from, reason string) *IllegalTransitionError {
	return &IllegalTransitionError{Resource: resource, From: from, Reason: reason}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s is %s, %s", ErrIllegalTransition, e.Resource, e.From, e.Reason)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// DuplicateFieldError lists every unique field whose value is already used.
type DuplicateFieldError struct {
	Resource string
	Fields   []string
}

func NewDuplicateFieldError(resource string, fields ...string) *DuplicateFieldError {
	return &DuplicateFieldError{Resource: resource, Fields: fields}
}

func (e *DuplicateFieldError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %s already exists", ErrDuplicateField, e.Resource)
	}
	return fmt.Sprintf("%s: %s with this %s already exists", ErrDuplicateField, e.Resource, strings.Join(e.Fields, ", "))
}

func (e *DuplicateFieldError) Unwrap() error {
	return ErrDuplicateField
}

// Package apperrors defines the error taxonomy shared by every domain
// package. All caller-recoverable failures are one of the kinds below;
// anything else is surfaced as KindInternal with no caller-actionable detail.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// KindValidation flags malformed or out-of-range input, tied to a field.
	KindValidation Kind = "VALIDATION"
	// KindUnauthorized flags a caller lacking ownership or participation.
	KindUnauthorized Kind = "UNAUTHORIZED"
	// KindNotFound flags a referenced entity that does not exist.
	KindNotFound Kind = "NOT_FOUND"
	// KindBusinessRule flags an operation that contradicts the current
	// lifecycle state, e.g. accepting a non-active request.
	KindBusinessRule Kind = "BUSINESS_RULE"
	// KindConflict flags a lost concurrency race against a uniqueness or
	// conditional-update guard.
	KindConflict Kind = "CONFLICT"
	// KindInternal is the fallback for unanticipated failures.
	KindInternal Kind = "INTERNAL"
)

// Error carries a kind, a caller-facing message and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Field   string // set for validation errors
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation builds a field-level validation error.
func Validation(field, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized builds an ownership/participation failure.
func Unauthorized(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a missing-entity error.
func NotFound(entity string, id fmt.Stringer) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %s not found", entity, id)}
}

// BusinessRule builds a lifecycle-state violation.
func BusinessRule(format string, args ...any) *Error {
	return &Error{Kind: KindBusinessRule, Message: fmt.Sprintf(format, args...)}
}

// Conflict builds a lost-race error.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unanticipated failure. The cause is logged upstream but
// never shown to callers.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// KindOf extracts the kind from any error in the chain, defaulting to
// KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error kind to its transport status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindBusinessRule:
		return http.StatusUnprocessableEntity
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies an error so callers can react without string matching.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindValidation
	KindNotFound
	KindConflict
	KindInvalidEvaluator
	KindSelfEvaluation
	KindDuplicateEvaluation
	KindInvalidScore
	KindInvalidOpinion
	KindInvalidAuthors
	KindProjectLocked
	KindProjectFullyEvaluated
	KindHasEvaluations
	KindHasProjects
)

// AppError is a structured application error carrying a machine-checkable
// kind, a caller-facing message and optionally the internal cause.
type AppError struct {
	Kind     Kind
	Message  string
	Fields   []string
	Internal error
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Internal)
	}
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, "; "))
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

// HTTPStatus maps the error kind to the status code the API returns.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// KindOf extracts the kind from any error. Non-AppError values map to
// KindInternal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// NewValidation creates a validation error with per-field messages.
func NewValidation(fields ...string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Message: "validation failed",
		Fields:  fields,
	}
}

// NewInternal wraps an unexpected failure. The cause is logged by the
// transport layer but never exposed to the caller.
func NewInternal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Internal: err}
}

func NewUnauthenticated() *AppError {
	return &AppError{Kind: KindUnauthenticated, Message: "authentication required"}
}

func NewNotFound(entity string) *AppError {
	return &AppError{Kind: KindNotFound, Message: entity + " not found"}
}

package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource whose business key already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation conflicts with the current state (e.g. a record still referenced by others).
var ErrConflict = errors.New("resource conflict")

// ErrUnauthenticated indicates bad or missing credentials.
var ErrUnauthenticated = errors.New("invalid credentials")

// FieldViolation describes a single field-level validation failure.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every violation found for one input record.
type ValidationError struct {
	Summary    string
	Violations []FieldViolation
}

// NewValidationError builds a ValidationError from a summary and optional violations.
func NewValidationError(summary string, violations ...FieldViolation) *ValidationError {
	return &ValidationError{Summary: summary, Violations: violations}
}

// Add appends a violation.
func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

// HasField reports whether a violation was already recorded for field.
func (e *ValidationError) HasField(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Empty reports whether no violations were recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Violations) == 0
}

func (e *ValidationError) Error() string {
	if e.Summary != "" {
		return e.Summary
	}
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return strings.Join(msgs, "; ")
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// AppError wraps infrastructure failures with an HTTP-ish code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StateError reports a record that clashes with stored state, either a taken
// business key or a record still referenced elsewhere. Message is safe to show clients.
type StateError struct {
	Message string
	Kind    error
}

func (e *StateError) Error() string {
	return e.Message + ": " + e.Kind.Error()
}

func (e *StateError) Unwrap() error {
	return e.Kind
}

// NewDuplicateError returns an error matching ErrDuplicate with a descriptive message.
func NewDuplicateError(message string) error {
	return &StateError{Message: message, Kind: ErrDuplicate}
}

// NewConflictError returns an error matching ErrConflict with a descriptive message.
func NewConflictError(message string) error {
	return &StateError{Message: message, Kind: ErrConflict}
}

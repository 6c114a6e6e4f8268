package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Request validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Generation pipeline errors
	CodeBackendError  ErrorCode = "BACKEND_ERROR"
	CodeParseFailure  ErrorCode = "PARSE_FAILURE"
	CodeArityMismatch ErrorCode = "ARITY_MISMATCH"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Err     error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`

	// Transient is only meaningful for CodeBackendError: the call may succeed if repeated.
	Transient bool `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches another *DomainError by code, so sentinel values such as
// ErrParseFailure work with errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code && t.Message == ""
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a diagnostic key/value pair and returns the error.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Sentinels for errors.Is checks. They carry only a code.
var (
	ErrBackend       = &DomainError{Code: CodeBackendError}
	ErrParseFailure  = &DomainError{Code: CodeParseFailure}
	ErrArityMismatch = &DomainError{Code: CodeArityMismatch}
	ErrNotFound      = &DomainError{Code: CodeNotFound}
)

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

// NewBackendError wraps a failed model backend call.
func NewBackendError(err error, transient bool) *DomainError {
	e := NewError(CodeBackendError, "model backend call failed", err)
	e.Transient = transient
	return e
}

// NewParseFailure reports model output that is not valid for the content contract.
func NewParseFailure(format string, args ...interface{}) *DomainError {
	return NewError(CodeParseFailure, fmt.Sprintf(format, args...), nil)
}

// WrapParseFailure reports a parse failure with an underlying decoder or schema error.
func WrapParseFailure(err error, format string, args ...interface{}) *DomainError {
	return NewError(CodeParseFailure, fmt.Sprintf(format, args...), err)
}

// NewArityMismatch reports a cross-artifact count mismatch.
func NewArityMismatch(items, hintGroups int) *DomainError {
	return NewError(CodeArityMismatch,
		fmt.Sprintf("quiz count and hints count do not match: %d quizzes, %d hint groups", items, hintGroups), nil).
		WithContext("items", items).
		WithContext("hint_groups", hintGroups)
}

// IsTransient reports whether err is a backend error worth retrying.
func IsTransient(err error) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == CodeBackendError && de.Transient
	}
	return false
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Code    ErrorCode   `json:"code"`
	Field   string      `json:"field,omitempty"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every invalid field of a request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Code: CodeMissingField, Field: field, Message: "field is required"}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{Code: CodeInvalidFormat, Field: field, Message: "invalid format", Value: value}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Code:    CodeOutOfRange,
		Field:   field,
		Message: fmt.Sprintf("must be between %d and %d", min, max),
		Value:   value,
	}
}

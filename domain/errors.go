package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeInvalid      ErrorCode = "INVALID"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInternal     ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain errors. Absent records are an expected outcome of point
// lookups, updates and deletes, never a panic.
var (
	ErrUserNotFound     = NewError(ErrCodeNotFound, "user not found")
	ErrContactNotFound  = NewError(ErrCodeNotFound, "contact not found")
	ErrWorkflowNotFound = NewError(ErrCodeNotFound, "workflow not found")
	ErrStepNotFound     = NewError(ErrCodeNotFound, "workflow step not found")
	ErrAgentNotFound    = NewError(ErrCodeNotFound, "ai agent not found")
	ErrTaskNotFound     = NewError(ErrCodeNotFound, "task not found")
	ErrActivityNotFound = NewError(ErrCodeNotFound, "activity not found")
	ErrTemplateNotFound = NewError(ErrCodeNotFound, "domain template not found")

	ErrUsernameTaken = NewError(ErrCodeConflict, "username already taken")
	ErrEmailTaken    = NewError(ErrCodeConflict, "email already taken")

	ErrUnauthorized   = NewError(ErrCodeUnauthorized, "unauthorized")
	ErrInvalidPayload = NewError(ErrCodeInvalid, "invalid payload")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}

// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// ErrorCode identifies which stage of domain processing failed
type ErrorCode string

const (
	ErrCodeParse    ErrorCode = "PARSE_ERROR"
	ErrCodeFetch    ErrorCode = "FETCH_ERROR"
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// Sentinels for errors.Is checks against an *Error of the matching code
var (
	ErrParse    = &Error{Code: ErrCodeParse}
	ErrFetch    = &Error{Code: ErrCodeFetch}
	ErrInternal = &Error{Code: ErrCodeInternal}
)

// Error wraps a failure with the stage it came from
type Error struct {
	Code       ErrorCode
	Message    string
	Underlying error
	Details    map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Underlying
}

// Is matches another *Error by code, otherwise defers to the underlying error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.Underlying, target)
}

// NewError creates a new Error
func NewError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
		Details:    make(map[string]interface{}),
	}
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

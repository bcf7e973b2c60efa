/*
Copyright © 2026 NetVerify
SPDX-License-Identifier: Apache-2.0
*/

// Package errors provides classified extraction errors. Every failure an
// extractor can produce is assigned exactly one ErrorCode at the point of
// detection; codes are never inferred later.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode classifies an extraction failure.
type ErrorCode string

// Error codes as constants. The set is closed: extending it requires
// updating every call site that branches on a code.
const (
	ErrCodeConfigNotFound    ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeMTUNotFound       ErrorCode = "MTU_NOT_FOUND"
	ErrCodeInvalidFormat     ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidMTUFormat  ErrorCode = "INVALID_MTU_FORMAT"
	ErrCodePlatformError     ErrorCode = "PLATFORM_ERROR"
	ErrCodeTimeout           ErrorCode = "TIMEOUT"
	ErrCodeInterfaceNotFound ErrorCode = "INTERFACE_NOT_FOUND"
)

// ExtractionError is a classified error raised by an extractor. Validators
// translate it into a failed ValidationResult carrying the code.
type ExtractionError struct {
	Code      ErrorCode
	Message   string
	Cause     error
	Timestamp time.Time
}

// New creates an ExtractionError with the given code and message.
func New(code ErrorCode, message string) *ExtractionError {
	return &ExtractionError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// Newf creates an ExtractionError with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *ExtractionError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates an ExtractionError that records cause as its origin.
func Wrap(code ErrorCode, message string, cause error) *ExtractionError {
	e := New(code, message)
	e.Cause = cause
	return e
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// CodeOf returns the ErrorCode carried by err or any error it wraps.
// Returns the empty code for nil and for errors without a classification.
func CodeOf(err error) ErrorCode {
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ""
}

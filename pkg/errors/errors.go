package errors

import (
	"fmt"
)

// ProfileNotFoundMessage is the user-facing message for every non-2xx profile response.
const ProfileNotFoundMessage = "Profile Not found"

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RequestError reports a profile response with a non-2xx status. Every status
// renders the same message; StatusCode keeps the real value for logs.
type RequestError struct {
	Username   string
	StatusCode int
}

// NewRequestError constructs a RequestError.
func NewRequestError(username string, statusCode int) error {
	return &RequestError{Username: username, StatusCode: statusCode}
}

func (e *RequestError) Error() string {
	if e == nil {
		return ""
	}
	return ProfileNotFoundMessage
}

// NotFound reports whether the service answered 404 rather than some other failure.
func (e *RequestError) NotFound() bool {
	return e != nil && e.StatusCode == 404
}

// TransportError wraps a failure that produced no HTTP response at all.
// Its message is the underlying error's message, unchanged.
type TransportError struct {
	Username string
	Err      error
}

// NewTransportError constructs a TransportError.
func NewTransportError(username string, err error) error {
	return &TransportError{Username: username, Err: err}
}

func (e *TransportError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// Unwrap exposes the transport failure.
func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DecodeError reports a 2xx response whose body was not a JSON object.
type DecodeError struct {
	Username string
	Err      error
}

// NewDecodeError constructs a DecodeError.
func NewDecodeError(username string, err error) error {
	return &DecodeError{Username: username, Err: err}
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return "decode profile"
	}
	return fmt.Sprintf("decode profile: %v", e.Err)
}

// Unwrap exposes the decoder error.
func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

package postbrief

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are mapped to user-facing states by the CLI: EINVALID and
// ENOCREDENTIAL are correctable input problems, EUNAVAILABLE and EUPSTREAM
// are transient upstream failures, EUNAUTHORIZED additionally evicts the
// active credential. None of them are fatal to the process.
const (
	EINVALID      = "invalid"      // input failed validation
	ENOTFOUND     = "not_found"    // entity does not exist
	EUNAVAILABLE  = "unavailable"  // document fetch failed
	ENOCREDENTIAL = "nocredential" // no active API key
	EUNAUTHORIZED = "unauthorized" // API key rejected
	EUPSTREAM     = "upstream"     // generation endpoint returned non-auth failure
	EEMPTY        = "empty"        // generation succeeded with no usable text
	EINTERNAL     = "internal"     // internal error
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human-readable description safe to show to the user.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("postbrief error: code=%s message=%s", e.Code, e.Message)
}

// Errorf constructs an *Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors report EINTERNAL; nil reports an empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message to avoid leaking
// internal details to the user.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

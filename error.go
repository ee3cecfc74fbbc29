package docindex

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECONFLICT  = "conflict"
	EINTERNAL  = "internal"
	EINVALID   = "invalid"
	EMALFORMED = "malformed"
	ENOTFOUND  = "not_found"
)

// Error represents an application-specific error. The Code is machine
// readable; the Message is safe to show to end users.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var m *MalformedDataError
	if errors.As(err, &m) {
		return EMALFORMED
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var m *MalformedDataError
	if errors.As(err, &m) {
		return m.Error()
	}
	return "Internal error"
}

// MalformedDataError reports a payload that does not have the shape of a
// search index. Record is the zero-based index of the offending record in
// the docs array, or -1 when the payload as a whole is malformed.
type MalformedDataError struct {
	Record int
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *MalformedDataError) Error() string {
	switch {
	case e.Record < 0:
		return "malformed payload: " + e.Reason
	case e.Field == "":
		return fmt.Sprintf("malformed record %d: %s", e.Record, e.Reason)
	default:
		return fmt.Sprintf("malformed record %d: field %q %s", e.Record, e.Field, e.Reason)
	}
}

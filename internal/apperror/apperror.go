// Package apperror defines the error type carried by every domain failure.
// Errors are built where the failure is detected and translated into the
// HTTP envelope exactly once, at the handler boundary.
package apperror

import (
	"errors"
	"net/http"
)

type Error struct {
	Status  int
	Message string
	Detail  any
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(message string, detail any) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message, Detail: detail}
}

func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Internal Server Error", Detail: err.Error()}
}

// From classifies an arbitrary error. Anything that is not already an
// *Error is treated as an unexpected failure and reported as a 500.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

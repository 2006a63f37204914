package booking

import (
	"errors"
	"fmt"
)

// Error codes for booking failures, mapped to HTTP semantics at the
// handler boundary.
const (
	CodeValidation = "validationError"
	CodeNotFound   = "notFound"
	CodeForbidden  = "forbidden"
)

type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &Error{Code: CodeValidation, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &Error{Code: CodeNotFound, Message: msg}
}

func NewForbiddenError(msg string) error {
	return &Error{Code: CodeForbidden, Message: msg}
}

// CodeOf returns the booking error code, or "" for unexpected errors.
func CodeOf(err error) string {
	var be *Error
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

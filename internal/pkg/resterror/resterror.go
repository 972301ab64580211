package resterror

import (
	"fmt"
	"net/http"
)

// Error is a REST-facing failure: a machine-readable code, a human message
// and the HTTP status the handler layer should answer with. Internal detail
// never leaks through it.
type Error struct {
	Code    string
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}

func New(code, message string, status int) *Error {
	return &Error{Code: code, Message: message, Status: status}
}

// NotFound builds a 404 error.
func NotFound(code, message string) *Error {
	return New(code, message, http.StatusNotFound)
}

// BadRequest builds a 400 error.
func BadRequest(code, message string) *Error {
	return New(code, message, http.StatusBadRequest)
}

// RequiredField builds the 400 error the required-field checker reports,
// naming the human label of the first missing field.
func RequiredField(code, label string) *Error {
	return New(code, fmt.Sprintf("%s is required", label), http.StatusBadRequest)
}

// FailedTransition marks a domain operation rejected by a business rule.
// Answered as 401, not 400: the request was well-formed but refused.
func FailedTransition(code, message string) *Error {
	return New(code, message, http.StatusUnauthorized)
}

// Forbidden builds a 403 error for capability failures at the route gate.
func Forbidden(code, message string) *Error {
	return New(code, message, http.StatusForbidden)
}

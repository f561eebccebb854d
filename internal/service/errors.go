package service

import "net/http"

// Error is a request-terminal failure carrying the HTTP status it maps to.
// Handlers render it into the response envelope's errors field.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string { return e.Message }

func BadRequest(msg string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Code: http.StatusUnauthorized, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Code: http.StatusNotFound, Message: msg}
}

package common

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound   = errors.New("requested resource not found")
	ErrBadRequest = errors.New("bad request")
)

// HTTPError attaches a response status to an error.
type HTTPError struct {
	Status int
	Err    error
	// Stack is set when the error was produced by a recovered panic.
	Stack []byte
}

func (e *HTTPError) Error() string {
	if e.Err == nil {
		return http.StatusText(e.Status)
	}
	return e.Err.Error()
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError builds an HTTPError whose message defaults to the status text.
func NewHTTPError(status int, format string, args ...interface{}) *HTTPError {
	if format == "" {
		return &HTTPError{Status: status, Err: errors.New(http.StatusText(status))}
	}
	return &HTTPError{Status: status, Err: fmt.Errorf(format, args...)}
}

// StatusFromError maps errors to HTTP status codes.
func StatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Status != 0 {
		return httpErr.Status
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrBadRequest) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

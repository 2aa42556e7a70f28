package middleware

import "net/http"

// ErrorHandler renders an error that a middleware could not recover from.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Chain wraps h so that requests pass through middlewares in the order given.
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"userbase/internal/common"
	"userbase/internal/logging"
)

// Recover turns a panic in any later handler into a 500 error for onError.
// When the handler had already started its response the panic is only
// logged, since the status line and part of the body are gone.
func Recover(onError ErrorHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				stack := debug.Stack()

				if ww.Status() != 0 {
					logging.Error.Printf("[%s] panic after response started (status %d) on %s %s: %v\n%s",
						GetRequestID(r.Context()), ww.Status(), r.Method, r.URL.Path, err, stack)
					return
				}

				onError(w, r, &common.HTTPError{
					Status: http.StatusInternalServerError,
					Err:    err,
					Stack:  stack,
				})
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

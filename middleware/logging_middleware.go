package middleware

import (
	"net/http"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"userbase/internal/logging"
)

// LoggingMiddleware logs each HTTP request once the response is written.
// Colored output is meant for a developer terminal.
func LoggingMiddleware(colored bool) func(http.Handler) http.Handler {
	return chiMiddleware.RequestLogger(&chiMiddleware.DefaultLogFormatter{
		Logger:  logging.Info,
		NoColor: !colored,
	})
}

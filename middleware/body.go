package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"userbase/internal/common"
)

type contextKey int

const jsonBodyKey contextKey = iota

// JSONBodyParser decodes application/json request bodies up to limit bytes.
// The decoded value is available through JSONBody and r.Body is rewound so
// handlers can decode it again into their own types.
func JSONBodyParser(limit int64, onError ErrorHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !hasBody(r) || !hasContentType(r, "application/json") {
				next.ServeHTTP(w, r)
				return
			}

			raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
			if err != nil {
				onError(w, r, bodyError("JSON", err))
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(raw))
			if len(bytes.TrimSpace(raw)) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			var body interface{}
			if err := json.Unmarshal(raw, &body); err != nil {
				onError(w, r, bodyError("JSON", err))
				return
			}

			ctx := context.WithValue(r.Context(), jsonBodyKey, body)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// URLEncodedParser parses application/x-www-form-urlencoded bodies into
// r.PostForm and r.Form.
func URLEncodedParser(limit int64, onError ErrorHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !hasBody(r) || !hasContentType(r, "application/x-www-form-urlencoded") {
				next.ServeHTTP(w, r)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, limit)
			if err := r.ParseForm(); err != nil {
				onError(w, r, bodyError("form", err))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// JSONBody returns the value decoded by JSONBodyParser, or nil.
func JSONBody(r *http.Request) interface{} {
	return r.Context().Value(jsonBodyKey)
}

func hasBody(r *http.Request) bool {
	return r.Body != nil && r.Body != http.NoBody && r.ContentLength != 0
}

func hasContentType(r *http.Request, want string) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == want
}

func bodyError(kind string, err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return &common.HTTPError{
			Status: http.StatusRequestEntityTooLarge,
			Err:    fmt.Errorf("request body exceeds %d bytes", maxErr.Limit),
		}
	}
	return &common.HTTPError{
		Status: http.StatusBadRequest,
		Err:    fmt.Errorf("invalid %s body: %w", kind, err),
	}
}

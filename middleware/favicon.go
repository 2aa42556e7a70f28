package middleware

import (
	"bytes"
	"crypto/sha1"
	_ "embed"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"time"
)

const (
	faviconPath   = "/favicon.ico"
	faviconMaxAge = 24 * time.Hour
	faviconAllow  = "GET, HEAD, OPTIONS"
)

//go:embed favicon.ico
var defaultFavicon []byte

// Favicon serves /favicon.ico from iconPath, or the built-in icon when
// iconPath is empty. The icon is read once.
func Favicon(iconPath string) (func(http.Handler) http.Handler, error) {
	icon := defaultFavicon
	if iconPath != "" {
		raw, err := os.ReadFile(iconPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read favicon: %w", err)
		}
		icon = raw
	}

	sum := sha1.Sum(icon)
	etag := `"` + hex.EncodeToString(sum[:]) + `"`
	cacheControl := fmt.Sprintf("public, max-age=%d", int(faviconMaxAge.Seconds()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != faviconPath {
				next.ServeHTTP(w, r)
				return
			}

			switch r.Method {
			case http.MethodGet, http.MethodHead:
			case http.MethodOptions:
				w.Header().Set("Allow", faviconAllow)
				w.WriteHeader(http.StatusOK)
				return
			default:
				w.Header().Set("Allow", faviconAllow)
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}

			w.Header().Set("Content-Type", "image/x-icon")
			w.Header().Set("Cache-Control", cacheControl)
			w.Header().Set("ETag", etag)
			http.ServeContent(w, r, faviconPath, time.Time{}, bytes.NewReader(icon))
		})
	}, nil
}

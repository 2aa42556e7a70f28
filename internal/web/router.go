package web

import (
	"net/http"

	"github.com/gorilla/mux"

	"userbase/middleware"
)

func (h *WebHandler) SetupRoutes() *mux.Router {
	r := mux.NewRouter()

	r.Handle("/", h.handle(h.Index)).Methods(http.MethodGet, http.MethodHead)

	r.NotFoundHandler = http.HandlerFunc(h.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(h.MethodNotAllowed)

	h.router = r
	return r
}

// Wrap puts router behind the middleware pipeline: request id, favicon,
// request logging, panic recovery, JSON body, URL-encoded body, router.
// Recovery sits after the logger so a panic is logged as a 500.
func (h *WebHandler) Wrap(router http.Handler) (http.Handler, error) {
	favicon, err := middleware.Favicon(h.config.FaviconPath)
	if err != nil {
		return nil, err
	}

	return middleware.Chain(router,
		middleware.RequestID,
		favicon,
		middleware.LoggingMiddleware(h.config.IsDevelopment()),
		middleware.Recover(h.HandleError),
		middleware.JSONBodyParser(h.config.BodyLimit, h.HandleError),
		middleware.URLEncodedParser(h.config.BodyLimit, h.HandleError),
	), nil
}

// Handler returns the fully wired HTTP handler.
func (h *WebHandler) Handler() (http.Handler, error) {
	return h.Wrap(h.SetupRoutes())
}

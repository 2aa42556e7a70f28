package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"sort"
	"strings"

	"github.com/gorilla/mux"

	"userbase/db"
	"userbase/internal/config"
	"userbase/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

// AppHandler is a handler that hands its failure to the error renderer
// instead of writing a response itself.
type AppHandler func(w http.ResponseWriter, r *http.Request) error

type WebHandler struct {
	userRepo  db.UserRepository
	templates *template.Template
	config    *config.Config
	router    *mux.Router
}

type IndexPageData struct {
	Title     string
	Env       string
	UserCount int64
	Routes    []RouteInfo
}

type RouteInfo struct {
	Path    string
	Methods []string
}

func NewWebHandler(userRepo db.UserRepository, cfg *config.Config) (*WebHandler, error) {
	funcMap := template.FuncMap{
		"join":  strings.Join,
		"upper": strings.ToUpper,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &WebHandler{
		userRepo:  userRepo,
		templates: tmpl,
		config:    cfg,
	}, nil
}

// Index renders the landing page.
func (h *WebHandler) Index(w http.ResponseWriter, r *http.Request) error {
	count, err := h.userRepo.Count(r.Context())
	if err != nil {
		return err
	}

	data := IndexPageData{
		Title:     h.config.AppName,
		Env:       h.config.Env,
		UserCount: count,
		Routes:    h.routes(),
	}
	return h.render(w, http.StatusOK, "index.html", data)
}

func (h *WebHandler) handle(fn AppHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.HandleError(w, r, err)
		}
	})
}

// render executes a template into a buffer so that a template failure can
// still become a clean error response.
func (h *WebHandler) render(w http.ResponseWriter, status int, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Error.Printf("Failed to write %s response: %v", name, err)
	}
	return nil
}

func (h *WebHandler) routes() []RouteInfo {
	if h.router == nil {
		return nil
	}

	var routes []RouteInfo
	err := h.router.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		path, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		methods, _ := route.GetMethods()
		routes = append(routes, RouteInfo{Path: path, Methods: methods})
		return nil
	})
	if err != nil {
		logging.Error.Printf("Failed to list routes: %v", err)
	}

	sort.Slice(routes, func(i, j int) bool {
		return routes[i].Path < routes[j].Path
	})
	return routes
}

package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"userbase/internal/common"
	"userbase/internal/logging"
	"userbase/middleware"
)

type ErrorPageData struct {
	Title   string
	Message string
	Status  int
	Error   *ErrorDetail
}

// ErrorDetail is only exposed in development.
type ErrorDetail struct {
	Status int      `json:"status"`
	Chain  []string `json:"chain"`
	Stack  string   `json:"stack,omitempty"`
}

type errorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   interface{} `json:"error"`
}

// NotFound turns unmatched routes into a 404 error.
func (h *WebHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.HandleError(w, r, common.NewHTTPError(http.StatusNotFound, ""))
}

func (h *WebHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.HandleError(w, r, common.NewHTTPError(http.StatusMethodNotAllowed, ""))
}

// HandleError is the last stop for every error raised while serving a request.
// Outside development the response carries only the status text.
func (h *WebHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	status := common.StatusFromError(err)
	if status >= http.StatusInternalServerError {
		logging.Error.Printf("[%s] %s %s: %v", middleware.GetRequestID(r.Context()), r.Method, r.URL.Path, err)
	}

	data := ErrorPageData{
		Title:   h.config.AppName,
		Message: http.StatusText(status),
		Status:  status,
	}
	if h.config.IsDevelopment() {
		data.Message = err.Error()
		data.Error = newErrorDetail(status, err)
	}

	if wantsJSON(r) {
		writeErrorJSON(w, data)
		return
	}

	if renderErr := h.render(w, status, "error.html", data); renderErr != nil {
		logging.Error.Printf("Error page failed: %v", renderErr)
		http.Error(w, data.Message, status)
	}
}

func newErrorDetail(status int, err error) *ErrorDetail {
	detail := &ErrorDetail{Status: status}
	for e := err; e != nil; e = errors.Unwrap(e) {
		msg := e.Error()
		if n := len(detail.Chain); n > 0 && detail.Chain[n-1] == msg {
			continue
		}
		detail.Chain = append(detail.Chain, msg)
	}

	var httpErr *common.HTTPError
	if errors.As(err, &httpErr) && len(httpErr.Stack) > 0 {
		detail.Stack = string(httpErr.Stack)
	}
	return detail
}

func writeErrorJSON(w http.ResponseWriter, data ErrorPageData) {
	resp := errorResponse{
		Status:  "ERROR",
		Message: data.Message,
		Error:   struct{}{},
	}
	if data.Error != nil {
		resp.Error = data.Error
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(data.Status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Error.Printf("Failed to encode error response: %v", err)
	}
}

// wantsJSON reports whether the Accept header ranks JSON above HTML.
// Ties on q-value go to whichever type is listed first. Wildcards are not
// considered, so "*/*" alone gets HTML.
func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	jsonQ, jsonAt := acceptQuality(accept, "application/json")
	if jsonAt < 0 || jsonQ <= 0 {
		return false
	}
	htmlQ, htmlAt := acceptQuality(accept, "text/html")
	if htmlAt < 0 || htmlQ < jsonQ {
		return true
	}
	return htmlQ == jsonQ && jsonAt < htmlAt
}

// acceptQuality returns the q-value of mediaType in an Accept header and its
// position in the list, or -1 when it is not listed.
func acceptQuality(accept, mediaType string) (float64, int) {
	for i, part := range strings.Split(accept, ",") {
		fields := strings.Split(part, ";")
		if !strings.EqualFold(strings.TrimSpace(fields[0]), mediaType) {
			continue
		}

		q := 1.0
		for _, param := range fields[1:] {
			key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(key), "q") {
				continue
			}
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
				q = parsed
			}
		}
		return q, i
	}
	return 0, -1
}

// Package httpapi serves color reports and previews over HTTP.
//
// Routes:
//   - GET /                  splash page (HTML)
//   - GET /{color}           color report (JSON)
//   - GET /{color}/preview   preview image; query parameters "type" and "size"
//
// Client errors are answered with 400 and the short error message as plain
// text. Encoder failures are logged and answered with 500 and a generic
// message.
package httpapi

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"fortio.org/log"
	"github.com/yuin/goldmark"

	"github.com/ironsheep/colorpeek/internal/service"
)

//go:embed splash.md
var splashMarkdown []byte

// renderFailedMessage is all a client learns about an encoder failure.
const renderFailedMessage = "could not make image"

// Handler routes requests to the color operations.
type Handler struct {
	mux    *http.ServeMux
	splash []byte
}

// New creates a Handler with all routes registered.
func New() (*Handler, error) {
	var body bytes.Buffer
	if err := goldmark.Convert(splashMarkdown, &body); err != nil {
		return nil, fmt.Errorf("render splash page: %w", err)
	}

	h := &Handler{
		mux: http.NewServeMux(),
		splash: fmt.Appendf(nil,
			"<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>colorpeek</title></head><body>\n%s</body></html>\n",
			body.Bytes()),
	}

	h.mux.HandleFunc("GET /{$}", h.handleSplash)
	h.mux.HandleFunc("GET /{color}", h.handleDescribe)
	h.mux.HandleFunc("GET /{color}/preview", h.handlePreview)

	return h, nil
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Debugf("%s %s", r.Method, r.URL.RequestURI())
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleSplash(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(h.splash)
}

func (h *Handler) handleDescribe(w http.ResponseWriter, r *http.Request) {
	report, err := service.DescribeColor(r.PathValue("color"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		log.Warnf("write report for %s: %v", r.URL.Path, err)
	}
}

func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	img, err := service.RenderImage(r.PathValue("color"), q.Get("size"), q.Get("type"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	if _, err := w.Write(img.Data); err != nil {
		log.Warnf("write preview for %s: %v", r.URL.Path, err)
	}
}

// writeError maps an operation error to a plain-text response.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if service.IsClientError(err) {
		log.Debugf("rejected %s: %v", r.URL.RequestURI(), err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Errf("render failed for %s: %v", r.URL.RequestURI(), err)
	http.Error(w, renderFailedMessage, http.StatusInternalServerError)
}

// Package site serves the embedded draft board page.
package site

import (
	"context"
	"errors"
	"net/http"
)

// ErrServe is returned when the embedded page cannot be read.
var ErrServe = errors.New("draft board serve failed")

// Register attaches the draft board to "/" on mux. Paths other than "/" and
// the board's own assets are not found.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("/", NewRootHandler().HandleRoot)
}

// RootHandler serves the board.
type RootHandler struct {
	files http.Handler
}

// NewRootHandler creates a root handler over the embedded files.
func NewRootHandler() *RootHandler {
	return &RootHandler{files: http.FileServer(FS())}
}

// HandleRoot handles GET / and the board's static assets.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}
	if r.URL.Path != "/" && !isAsset(r.URL.Path) {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Cache-Control", "no-cache")
	h.files.ServeHTTP(w, r)
}

func isAsset(path string) bool {
	switch path {
	case "/board.js", "/board.css":
		return true
	}
	return false
}

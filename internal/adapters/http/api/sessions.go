package api

import (
	"net/http"
	"strings"
)

// SessionHandler serves GET and DELETE /draft/sessions/{id}.
type SessionHandler struct {
	deps SessionDependencies
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(deps SessionDependencies) *SessionHandler {
	return &SessionHandler{deps: deps}
}

// HandleSession returns or resets one session's recommendation counts.
func (h *SessionHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	const op = "api.session"
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/draft/sessions/"), "/")
	if id == "" || strings.Contains(id, "/") {
		fail(w, NewKind(op, ErrNotFound))
		return
	}

	switch r.Method {
	case http.MethodGet:
		resp, err := h.deps.Session(r.Context(), id)
		if err != nil {
			fail(w, Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, resp)
	case http.MethodDelete:
		if err := h.deps.ResetSession(r.Context(), id); err != nil {
			fail(w, Wrap(op, err))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.NotFound(w, r)
	}
}

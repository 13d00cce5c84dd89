package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/okian/draftsensei/internal/domain/types"
)

// DraftHandler serves the recommendation endpoints.
type DraftHandler struct {
	deps DraftDependencies
}

// NewDraftHandler creates a new draft handler.
func NewDraftHandler(deps DraftDependencies) *DraftHandler {
	return &DraftHandler{deps: deps}
}

// HandleSuggest handles POST /draft/suggest.
func (h *DraftHandler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	serveDraft(w, r, "api.suggest", h.deps.Suggest)
}

// HandlePick handles POST /draft/pick. The body must name a lane.
func (h *DraftHandler) HandlePick(w http.ResponseWriter, r *http.Request) {
	serveDraft(w, r, "api.pick", h.deps.Pick)
}

// HandleBans handles POST /draft/bans.
func (h *DraftHandler) HandleBans(w http.ResponseWriter, r *http.Request) {
	serveDraft(w, r, "api.bans", h.deps.Bans)
}

// HandleAnalyze handles POST /draft/analyze.
func (h *DraftHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	serveDraft(w, r, "api.analyze", h.deps.Analyze)
}

func serveDraft[T any](w http.ResponseWriter, r *http.Request, op string, fn func(context.Context, types.DraftRequest) (T, error)) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	req, err := decodeDraft(w, r)
	if err != nil {
		fail(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	resp, err := fn(r.Context(), req)
	if err != nil {
		fail(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// decodeDraft reads a DraftRequest body. An empty body is an empty draft.
func decodeDraft(w http.ResponseWriter, r *http.Request) (types.DraftRequest, error) {
	var req types.DraftRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return types.DraftRequest{}, err
	}
	return req, nil
}

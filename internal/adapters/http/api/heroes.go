package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"github.com/okian/draftsensei/internal/domain/types"
)

const defaultPairLimit = 5

// HeroHandler serves the hero catalog endpoints.
type HeroHandler struct {
	deps HeroDependencies
}

// NewHeroHandler creates a new hero handler.
func NewHeroHandler(deps HeroDependencies) *HeroHandler {
	return &HeroHandler{deps: deps}
}

// HandleList handles GET /heroes?role=&lane=&search=&skip=&limit=.
func (h *HeroHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.heroes"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	skip, err := queryInt(q, "skip", 0)
	if err != nil {
		fail(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	limit, err := queryInt(q, "limit", 0)
	if err != nil {
		fail(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	list, err := h.deps.Heroes(r.Context(), types.HeroQuery{
		Role:   q.Get("role"),
		Lane:   q.Get("lane"),
		Search: q.Get("search"),
		Skip:   skip,
		Limit:  limit,
	})
	if err != nil {
		fail(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// HandleHero handles GET /heroes/{name}, /heroes/{name}/counters and
// /heroes/{name}/synergy.
func (h *HeroHandler) HandleHero(w http.ResponseWriter, r *http.Request) {
	const op = "api.hero"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/heroes/"), "/")
	name, sub, _ := strings.Cut(rest, "/")
	if name == "" {
		fail(w, NewKind(op, ErrNotFound))
		return
	}

	switch sub {
	case "":
		detail, err := h.deps.Hero(r.Context(), name)
		if err != nil {
			fail(w, Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, detail)
	case "counters", "synergy":
		n, err := queryInt(r.URL.Query(), "limit", defaultPairLimit)
		if err != nil {
			fail(w, WrapKind(op, ErrBadRequest, err))
			return
		}
		pairs := h.deps.Counters
		if sub == "synergy" {
			pairs = h.deps.Partners
		}
		resp, err := pairs(r.Context(), name, n)
		if err != nil {
			fail(w, Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, resp)
	default:
		fail(w, NewKind(op, ErrNotFound))
	}
}

// queryInt parses a non-negative integer query parameter.
func queryInt(q url.Values, key string, def int) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return def, nil
	}
	u, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a non-negative integer: %w", key, err)
	}
	n, err := safecast.Conv[int](u)
	if err != nil {
		return 0, fmt.Errorf("%s out of range: %w", key, err)
	}
	return n, nil
}

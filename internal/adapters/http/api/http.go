// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/okian/draftsensei/internal/domain/types"
)

// maxBodyBytes bounds draft request bodies.
const maxBodyBytes = 64 << 10

// DraftDependencies serves the draft endpoints.
type DraftDependencies interface {
	Suggest(ctx context.Context, req types.DraftRequest) (types.SuggestResponse, error)
	Pick(ctx context.Context, req types.DraftRequest) (types.SuggestResponse, error)
	Bans(ctx context.Context, req types.DraftRequest) (types.BansResponse, error)
	Analyze(ctx context.Context, req types.DraftRequest) (types.AnalyzeResponse, error)
}

// HeroDependencies serves the hero catalog endpoints.
type HeroDependencies interface {
	Heroes(ctx context.Context, q types.HeroQuery) (types.HeroList, error)
	Hero(ctx context.Context, name string) (types.HeroDetail, error)
	Counters(ctx context.Context, name string, n int) (types.PairsResponse, error)
	Partners(ctx context.Context, name string, n int) (types.PairsResponse, error)
}

// SessionDependencies serves the diversity session endpoints.
type SessionDependencies interface {
	Session(ctx context.Context, id string) (types.SessionResponse, error)
	ResetSession(ctx context.Context, id string) error
}

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	DraftDependencies
	HeroDependencies
	SessionDependencies
}

// ServerOption applies a configuration option to the Server.
type ServerOption func(*Server)

// WithRateLimit limits draft and hero requests to rps with the given burst.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) ServerOption {
	return func(s *Server) {
		if rps <= 0 {
			s.limiter = nil
			return
		}
		s.limiter = rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	}
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	draftHandler   *DraftHandler
	heroHandler    *HeroHandler
	sessionHandler *SessionHandler
	liveHandler    *LiveHandler
	limiter        *rate.Limiter
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	s := &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		draftHandler:   NewDraftHandler(deps),
		heroHandler:    NewHeroHandler(deps),
		sessionHandler: NewSessionHandler(deps),
		liveHandler:    NewLiveHandler(deps),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("/draft/suggest", s.route(s.draftHandler.HandleSuggest, "draft_suggest"))
	mux.HandleFunc("/draft/pick", s.route(s.draftHandler.HandlePick, "draft_pick"))
	mux.HandleFunc("/draft/bans", s.route(s.draftHandler.HandleBans, "draft_bans"))
	mux.HandleFunc("/draft/analyze", s.route(s.draftHandler.HandleAnalyze, "draft_analyze"))
	mux.HandleFunc("/draft/sessions/", s.route(s.sessionHandler.HandleSession, "draft_sessions"))
	mux.HandleFunc("/draft/live", MetricsMiddleware(s.liveHandler.HandleLive, "draft_live"))

	mux.HandleFunc("/heroes", s.route(s.heroHandler.HandleList, "heroes"))
	mux.HandleFunc("/heroes/", s.route(s.heroHandler.HandleHero, "hero"))
}

// route applies the rate limiter, when configured, inside the metrics middleware.
func (s *Server) route(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	if s.limiter != nil {
		next = RateLimitMiddleware(next, s.limiter)
	}
	return MetricsMiddleware(next, endpoint)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil && status < http.StatusInternalServerError {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

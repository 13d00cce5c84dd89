// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the command line client.
package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/text/cases"

	"github.com/okian/draftsensei/internal/adapters/repository"
	"github.com/okian/draftsensei/internal/domain/catalog"
	"github.com/okian/draftsensei/internal/domain/diversity"
	"github.com/okian/draftsensei/internal/domain/engine"
	"github.com/okian/draftsensei/internal/domain/model"
	"github.com/okian/draftsensei/internal/domain/registry"
	"github.com/okian/draftsensei/internal/domain/tuning"
	"github.com/okian/draftsensei/internal/domain/types"
	"github.com/okian/draftsensei/pkg/logger"
	"github.com/okian/draftsensei/pkg/metrics"
)

// Defaults for background work.
const (
	defaultGaugeInterval = time.Minute
	reloadDebounce       = 250 * time.Millisecond
	defaultPairs         = 5
	maxPairs             = 20
)

// Service wires a hero source, the recommendation engine and the session
// store. The engine is swapped atomically when the catalog is reloaded.
type Service struct {
	mu sync.RWMutex

	// Core components
	engine   atomic.Pointer[engine.Engine]
	source   repository.HeroSource
	sessions *repository.SessionStore

	// Configuration
	sourceKind    string
	sourcePath    string
	watch         bool
	tuning        tuning.Tuning
	sessionTTL    time.Duration
	maxSessions   int
	gaugeInterval time.Duration

	// State
	started bool
	stopCh  chan struct{}
	wg      sync.WaitGroup

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHeroSource selects the kind and location of the hero records.
func WithHeroSource(kind, path string) Option {
	return func(s *Service) {
		s.sourceKind = kind
		s.sourcePath = path
	}
}

// WithSource uses an already opened source. The service closes it on Stop.
func WithSource(src repository.HeroSource) Option {
	return func(s *Service) {
		s.source = src
	}
}

// WithWatch reloads the catalog when a file source changes on disk.
func WithWatch(enabled bool) Option {
	return func(s *Service) {
		s.watch = enabled
	}
}

// WithTuning sets the heuristic table handed to the engine.
func WithTuning(t tuning.Tuning) Option {
	return func(s *Service) {
		s.tuning = t
	}
}

// WithSessionTTL sets how long an idle diversity session is kept.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

// WithMaxSessions bounds the number of diversity sessions.
func WithMaxSessions(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxSessions = n
		}
	}
}

// WithGaugeInterval sets how often the active sessions gauge is refreshed.
func WithGaugeInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.gaugeInterval = d
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		sourceKind:    repository.SourceYAML,
		sourcePath:    "data/heroes.yaml",
		tuning:        tuning.Default(),
		sessionTTL:    repository.DefaultSessionTTL,
		maxSessions:   repository.DefaultMaxSessions,
		gaugeInterval: defaultGaugeInterval,
		stopCh:        make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start opens the hero source, builds the first engine and starts the
// session gauge and, when enabled, the file watcher.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting draft service...",
		logger.String("source", s.sourceKind),
		logger.String("path", s.sourcePath),
	)

	if s.source == nil {
		src, err := repository.Open(ctx, s.sourceKind, s.sourcePath)
		if err != nil {
			return fmt.Errorf("open hero source: %w", err)
		}
		s.source = src
	}

	s.sessions = repository.NewSessionStore(
		repository.WithSessionTTL(s.sessionTTL),
		repository.WithMaxSessions(s.maxSessions),
		repository.WithEvictHook(func(string) { metrics.RecordSessionsEvicted(1) }),
	)

	if err := s.reload(ctx); err != nil {
		_ = s.source.Close()
		s.source = nil
		return err
	}

	s.stopCh = make(chan struct{})

	s.wg.Add(1)
	go s.gaugeLoop()

	if fs, ok := s.source.(*repository.FileSource); ok && s.watch {
		if err := s.startWatcher(ctx, fs.Path()); err != nil {
			s.logger.Warn(ctx, "hero file watch disabled", logger.Error(err))
		}
	}

	s.started = true
	s.logger.Info(ctx, "draft service started",
		logger.Int("heroes", s.engine.Load().Catalog().Len()),
		logger.Int("maxSessions", s.maxSessions),
		logger.String("sessionTTL", s.sessionTTL.String()),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping draft service...")

	close(s.stopCh)
	s.wg.Wait()

	if s.source != nil {
		if err := s.source.Close(); err != nil {
			s.logger.Warn(context.Background(), "closing hero source failed", logger.Error(err))
		}
		s.source = nil
	}

	s.engine.Store(nil)
	s.started = false
	s.logger.Info(context.Background(), "draft service stopped")
}

// Reload rebuilds the catalog from the source and swaps in a new engine. On
// failure the previous engine stays active.
func (s *Service) Reload(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return ErrNotStarted
	}
	return s.reload(ctx)
}

func (s *Service) reload(ctx context.Context) error {
	records, err := s.source.Heroes(ctx)
	if err != nil {
		metrics.RecordCatalogReload("error")
		return fmt.Errorf("read heroes: %w", err)
	}

	c := catalog.New(records)
	for _, r := range c.Rejected() {
		s.logger.Warn(ctx, "hero record rejected", logger.String("hero", r.Name), logger.Error(r.Err))
	}

	e, err := engine.New(c, engine.WithTuning(s.tuning))
	if err != nil {
		metrics.RecordCatalogReload("error")
		return fmt.Errorf("build engine: %w", err)
	}
	s.engine.Store(e)

	metrics.RecordCatalogReload("ok")
	metrics.UpdateCatalog(c.Len(), len(c.Rejected()))
	s.logger.Info(ctx, "hero catalog loaded",
		logger.Int("heroes", c.Len()),
		logger.Int("rejected", len(c.Rejected())),
	)
	return nil
}

func (s *Service) gaugeLoop() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.gaugeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			metrics.UpdateActiveSessions(s.sessions.Len())
		}
	}
}

// startWatcher watches the directory holding path so that editors which
// replace the file are seen too.
func (s *Service) startWatcher(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() { _ = w.Close() }()

		debounce := time.NewTimer(reloadDebounce)
		debounce.Stop()
		defer debounce.Stop()

		for {
			select {
			case <-s.stopCh:
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				debounce.Reset(reloadDebounce)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.logger.Warn(ctx, "hero file watcher error", logger.Error(err))
			case <-debounce.C:
				if err := s.reload(context.WithoutCancel(ctx)); err != nil {
					s.logger.Error(ctx, "hero catalog reload failed, keeping previous catalog", logger.Error(err))
				}
			}
		}
	}()
	return nil
}

// current returns the active engine.
func (s *Service) current() (*engine.Engine, error) {
	e := s.engine.Load()
	if e == nil {
		return nil, ErrNotStarted
	}
	return e, nil
}

// Suggest recommends the next pick with the lane chosen automatically, or
// for req.Lane when one is given.
func (s *Service) Suggest(ctx context.Context, req types.DraftRequest) (types.SuggestResponse, error) {
	if req.Lane != "" {
		return s.Pick(ctx, req)
	}
	return s.recommend(ctx, req, "")
}

// Pick recommends the next pick for the lane named in the request.
func (s *Service) Pick(ctx context.Context, req types.DraftRequest) (types.SuggestResponse, error) {
	if strings.TrimSpace(req.Lane) == "" {
		return types.SuggestResponse{}, ErrLaneRequired
	}
	l, err := model.ParseLane(req.Lane)
	if err != nil {
		return types.SuggestResponse{}, fmt.Errorf("%w: %w", types.ErrInvalidRequest, err)
	}
	return s.recommend(ctx, req, l)
}

func (s *Service) recommend(ctx context.Context, req types.DraftRequest, l model.Lane) (types.SuggestResponse, error) {
	if err := req.Validate(); err != nil {
		return types.SuggestResponse{}, err
	}
	e, err := s.current()
	if err != nil {
		return types.SuggestResponse{}, err
	}

	start := time.Now()
	state := req.State()
	var rec engine.Recommendation
	id, err := s.sessions.Update(ctx, req.SessionID, func(div diversity.State) (diversity.State, error) {
		var (
			next   diversity.State
			recErr error
		)
		if l == "" {
			rec, next, recErr = e.RecommendAuto(ctx, state, div)
		} else {
			rec, next, recErr = e.Recommend(ctx, state, l, div)
		}
		return next, recErr
	})
	if err != nil {
		return types.SuggestResponse{}, err
	}

	mode := "auto"
	if l != "" {
		mode = "explicit"
	}
	metrics.RecordRecommendation(mode, string(rec.Lane), rec.Candidates, float64(time.Since(start).Microseconds())/1000)
	if len(rec.Suggestions) == 0 {
		metrics.RecordEmptyRecommendation()
	}

	fields := []logger.Field{
		logger.String("session", id),
		logger.String("lane", string(rec.Lane)),
		logger.Any("weights", rec.Weights),
		logger.Int("candidates", rec.Candidates),
	}
	if len(rec.Suggestions) > 0 {
		fields = append(fields, logger.String("top", rec.Suggestions[0].Hero))
	}
	s.logger.Debug(ctx, "recommendation", fields...)

	return types.SuggestResponse{SessionID: id, Recommendation: rec}, nil
}

// Bans suggests heroes to ban.
func (s *Service) Bans(ctx context.Context, req types.DraftRequest) (types.BansResponse, error) {
	if err := req.Validate(); err != nil {
		return types.BansResponse{}, err
	}
	e, err := s.current()
	if err != nil {
		return types.BansResponse{}, err
	}
	bans, err := e.SuggestBans(ctx, req.State())
	if err != nil {
		return types.BansResponse{}, err
	}
	metrics.RecordBanSuggestion()
	return types.BansResponse{BestBans: bans}, nil
}

// Analyze reports on the draft so far.
func (s *Service) Analyze(ctx context.Context, req types.DraftRequest) (types.AnalyzeResponse, error) {
	if err := req.Validate(); err != nil {
		return types.AnalyzeResponse{}, err
	}
	e, err := s.current()
	if err != nil {
		return types.AnalyzeResponse{}, err
	}
	a, err := e.Analyze(ctx, req.State())
	if err != nil {
		return types.AnalyzeResponse{}, err
	}
	metrics.RecordAnalysis()
	return types.AnalyzeResponse{Analysis: a}, nil
}

// Heroes lists catalog heroes matching q.
func (s *Service) Heroes(_ context.Context, q types.HeroQuery) (types.HeroList, error) {
	e, err := s.current()
	if err != nil {
		return types.HeroList{}, err
	}

	var role model.Role
	if q.Role != "" {
		if role, err = model.ParseRole(q.Role); err != nil {
			return types.HeroList{}, fmt.Errorf("%w: %w", types.ErrInvalidRequest, err)
		}
	}
	var l model.Lane
	if q.Lane != "" {
		if l, err = model.ParseLane(q.Lane); err != nil {
			return types.HeroList{}, fmt.Errorf("%w: %w", types.ErrInvalidRequest, err)
		}
	}
	if q.Skip < 0 || q.Limit < 0 {
		return types.HeroList{}, fmt.Errorf("skip and limit must not be negative: %w", types.ErrInvalidRequest)
	}

	folder := cases.Fold()
	needle := folder.String(strings.TrimSpace(q.Search))
	matched := make([]types.HeroSummary, 0)
	for _, h := range e.Heroes(role, l) {
		if needle != "" && !strings.Contains(folder.String(h.Name), needle) {
			continue
		}
		matched = append(matched, types.Summarize(h))
	}

	total := len(matched)
	if q.Skip >= total {
		return types.HeroList{Heroes: []types.HeroSummary{}, Total: total}, nil
	}
	page := matched[q.Skip:]
	if q.Limit > 0 && q.Limit < len(page) {
		page = page[:q.Limit]
	}
	return types.HeroList{Heroes: page, Total: total}, nil
}

// Hero returns one hero with its attributes.
func (s *Service) Hero(_ context.Context, name string) (types.HeroDetail, error) {
	e, err := s.current()
	if err != nil {
		return types.HeroDetail{}, err
	}
	h, err := e.Hero(name)
	if err != nil {
		return types.HeroDetail{}, err
	}
	return types.Detail(h), nil
}

// Counters lists the best counters to name.
func (s *Service) Counters(_ context.Context, name string, n int) (types.PairsResponse, error) {
	return s.pairs(name, n, (*engine.Engine).CountersTo)
}

// Partners lists the best synergy partners for name.
func (s *Service) Partners(_ context.Context, name string, n int) (types.PairsResponse, error) {
	return s.pairs(name, n, (*engine.Engine).PartnersFor)
}

func (s *Service) pairs(name string, n int, fn func(*engine.Engine, string, int) ([]registry.Pair, error)) (types.PairsResponse, error) {
	e, err := s.current()
	if err != nil {
		return types.PairsResponse{}, err
	}
	if n <= 0 {
		n = defaultPairs
	}
	n = min(n, maxPairs)
	h, err := e.Hero(name)
	if err != nil {
		return types.PairsResponse{}, err
	}
	pairs, err := fn(e, h.Name, n)
	if err != nil {
		return types.PairsResponse{}, err
	}
	return types.PairsResponse{Hero: h.Name, Pairs: pairs}, nil
}

// Session returns the recommendation counts of a live session.
func (s *Service) Session(ctx context.Context, id string) (types.SessionResponse, error) {
	if _, err := s.current(); err != nil {
		return types.SessionResponse{}, err
	}
	st, err := s.sessions.Get(ctx, id)
	if err != nil {
		return types.SessionResponse{}, err
	}
	return types.SessionResponse{SessionID: id, Counts: st.Counts()}, nil
}

// ResetSession forgets a session's diversity state.
func (s *Service) ResetSession(ctx context.Context, id string) error {
	if _, err := s.current(); err != nil {
		return err
	}
	if !s.sessions.Delete(ctx, id) {
		return repository.ErrSessionNotFound
	}
	metrics.UpdateActiveSessions(s.sessions.Len())
	return nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":     s.started,
		"heroSource":  s.sourceKind,
		"maxSessions": s.maxSessions,
		"sessionTTL":  s.sessionTTL.String(),
		"resultSize":  s.tuning.ResultSize,
	}

	if e := s.engine.Load(); e != nil {
		stats["heroes"] = e.Catalog().Len()
		stats["rejectedHeroes"] = len(e.Catalog().Rejected())
		metrics.UpdateCatalog(e.Catalog().Len(), len(e.Catalog().Rejected()))
	}
	if s.sessions != nil {
		n := s.sessions.Len()
		stats["activeSessions"] = n
		metrics.UpdateActiveSessions(n)
	}

	return stats
}

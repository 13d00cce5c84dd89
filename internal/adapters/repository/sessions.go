package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/okian/draftsensei/internal/domain/diversity"
)

// Session store defaults.
const (
	DefaultSessionTTL  = time.Hour
	DefaultMaxSessions = 10000
)

// SessionOption applies a configuration option to the SessionStore.
type SessionOption func(*SessionStore)

// WithSessionTTL sets how long an idle session is kept.
func WithSessionTTL(ttl time.Duration) SessionOption {
	return func(s *SessionStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithMaxSessions bounds the number of sessions kept; the least recently
// used one is evicted first. Zero or negative means unbounded.
func WithMaxSessions(n int) SessionOption {
	return func(s *SessionStore) {
		s.maxSessions = max(n, 0)
	}
}

// WithEvictHook calls fn with the id of every session dropped for idling
// past its TTL or for overflowing the store. Delete does not call it.
func WithEvictHook(fn func(id string)) SessionOption {
	return func(s *SessionStore) {
		s.onEvict = fn
	}
}

// session is one draft session. mu guards state.
type session struct {
	mu      sync.Mutex
	id      string
	state   diversity.State
	deleted atomic.Bool
}

// SessionStore keeps the diversity state of each draft session in memory.
// Updates to one session are serialized; different sessions proceed in
// parallel.
type SessionStore struct {
	// mu makes get-or-create atomic; the cache locks itself otherwise.
	mu    sync.Mutex
	cache *expirable.LRU[string, *session]

	ttl         time.Duration
	maxSessions int
	onEvict     func(id string)
}

// NewSessionStore creates an empty store.
func NewSessionStore(opts ...SessionOption) *SessionStore {
	s := &SessionStore{
		ttl:         DefaultSessionTTL,
		maxSessions: DefaultMaxSessions,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cache = expirable.NewLRU[string, *session](s.maxSessions, s.evicted, s.ttl)
	return s
}

func (s *SessionStore) evicted(id string, sess *session) {
	if s.onEvict != nil && !sess.deleted.Load() {
		s.onEvict(id)
	}
}

// acquire returns the live session for id, creating it when missing or
// expired, and renews its TTL. An empty id gets a fresh random one.
func (s *SessionStore) acquire(id string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}
	sess, ok := s.cache.Get(id)
	if !ok {
		sess = &session{id: id}
	}
	s.cache.Add(id, sess)
	return sess
}

// Update runs fn on the session's state and stores the result. The session
// is created when id is empty, unknown or expired; its id is returned. When
// fn fails the stored state is left unchanged.
func (s *SessionStore) Update(ctx context.Context, id string, fn func(diversity.State) (diversity.State, error)) (string, error) {
	if err := ctx.Err(); err != nil {
		return id, err
	}
	sess := s.acquire(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	next, err := fn(sess.state)
	if err != nil {
		return sess.id, err
	}
	sess.state = next
	return sess.id, nil
}

// Get returns the state of a live session. It does not renew the TTL.
func (s *SessionStore) Get(_ context.Context, id string) (diversity.State, error) {
	sess, ok := s.cache.Peek(id)
	if !ok {
		return diversity.State{}, ErrSessionNotFound
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.state, nil
}

// Delete forgets a session. It reports whether a live session existed.
func (s *SessionStore) Delete(_ context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, live := s.cache.Peek(id)
	if live {
		sess.deleted.Store(true)
	}
	return s.cache.Remove(id) && live
}

// Len returns the number of sessions held, expired ones included until the
// cache drops them.
func (s *SessionStore) Len() int {
	return s.cache.Len()
}

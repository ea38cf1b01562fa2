package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/yislamovic/scheduler-v2/internal/domain"
	"github.com/yislamovic/scheduler-v2/internal/metrics"
)

// Trigger records how a session came into being, for logging and metrics.
type Trigger string

const (
	// TriggerInit marks sessions from an explicit POST /api/session/init.
	TriggerInit Trigger = "init"
	// TriggerImplicit marks sessions materialized because a request carried
	// no token or an unknown one.
	TriggerImplicit Trigger = "implicit"
)

// Session is one demo user's private copy of the schedule. The store only
// guards its own map; requests carrying the same token may still interleave
// mutations on the Schedule with last-write-wins semantics. Known gap,
// acceptable for a demo.
type Session struct {
	ID        string
	CreatedAt time.Time
	Schedule  *domain.Schedule
}

// Store holds all live sessions keyed by opaque token.
type Store struct {
	clock  clockwork.Clock
	seed   func() *domain.Schedule
	limits *Limits

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore creates a store that clones sessions from seed. limits may be nil
// for an unbounded store (tests).
func NewStore(clock clockwork.Clock, seed func() *domain.Schedule, limits *Limits) *Store {
	return &Store{
		clock:    clock,
		seed:     seed,
		limits:   limits,
		sessions: make(map[string]*Session),
	}
}

// Create registers a fresh session with its own deep copy of the seed data.
// It never fails: if the limiter refuses registration the session is still
// returned, it just lives only as long as the request that made it.
func (s *Store) Create(trigger Trigger) *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: s.clock.Now(),
		Schedule:  s.seed(),
	}

	s.mu.Lock()
	registered, reason := s.register(sess)
	count := len(s.sessions)
	s.mu.Unlock()

	if !registered {
		metrics.SessionsRejected.WithLabelValues(string(reason)).Inc()
		slog.Warn("Session not registered, serving ephemeral copy", "reason", reason, "live_sessions", count)
		return sess
	}

	metrics.SessionsCreated.WithLabelValues(string(trigger)).Inc()
	metrics.SessionsActive.Set(float64(count))
	slog.Info("Created session", "session_id", sess.ID, "trigger", trigger)
	return sess
}

// register must be called with mu held.
func (s *Store) register(sess *Session) (bool, LimitReason) {
	if s.limits != nil {
		if ok, reason := s.limits.Allow(len(s.sessions)); !ok {
			return false, reason
		}
	}
	s.sessions[sess.ID] = sess
	return true, ""
}

// Resolve returns the session for token, or materializes a new one when the
// token is empty or unknown. The second return value reports created-new so
// callers can tell the self-healing path from a plain lookup; they must
// treat the returned session's ID as authoritative either way.
func (s *Store) Resolve(token string) (*Session, bool) {
	if token != "" {
		s.mu.Lock()
		sess, ok := s.sessions[token]
		s.mu.Unlock()
		if ok {
			return sess, false
		}
	}
	return s.Create(TriggerImplicit), true
}

// Exists reports whether token maps to a live session. Pure lookup, no
// side effects.
func (s *Store) Exists(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[token]
	return ok
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// EvictExpired removes every session older than maxAge and returns the
// count removed. The lock is held only for the map walk and deletes.
func (s *Store) EvictExpired(maxAge time.Duration) int {
	now := s.clock.Now()

	s.mu.Lock()
	evicted := 0
	for token, sess := range s.sessions {
		if now.Sub(sess.CreatedAt) > maxAge {
			delete(s.sessions, token)
			evicted++
		}
	}
	remaining := len(s.sessions)
	s.mu.Unlock()

	if evicted > 0 {
		metrics.SessionsEvicted.Add(float64(evicted))
		metrics.SessionsActive.Set(float64(remaining))
	}
	return evicted
}

// StartSweeper runs EvictExpired on every tick until the returned stop
// function is called. Eviction is decoupled from request handling; an
// in-flight request against an evicted token simply resolves to a new
// session on its next lookup.
func (s *Store) StartSweeper(interval, maxAge time.Duration) func() {
	ticker := s.clock.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.Chan():
				if evicted := s.EvictExpired(maxAge); evicted > 0 {
					slog.Info("Evicted expired sessions", "count", evicted, "remaining", s.Len())
				}
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() {
		close(done)
	}
}

// Package session tracks page sessions: one per page load, each owning the
// live navigation bar of that load and its scroll subscription.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cisto/site/internal/navbar"
	"github.com/cisto/site/internal/pubsub"
	"github.com/google/uuid"
)

// Reasons a session is torn down.
const (
	ReasonDisconnect = "disconnect"
	ReasonExpired    = "expired"
	ReasonEvicted    = "evicted"
	ReasonShutdown   = "shutdown"
)

var (
	// ErrClosed is returned by Open once the registry has shut down.
	ErrClosed = errors.New("session registry closed")
	// ErrFull is returned by Open when every slot is held by a connected page.
	ErrFull = errors.New("session registry full")
)

// Session is the server-side state of one page load.
type Session struct {
	ID  string
	Nav *navbar.Controller

	ctx      context.Context
	cancel   context.CancelFunc
	lastSeen atomic.Int64
	conns    atomic.Int32
}

// Done is closed when the session is torn down.
func (s *Session) Done() <-chan struct{} {
	return s.ctx.Done()
}

// Touch records activity so the janitor keeps the session.
func (s *Session) Touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

// Hold marks a live connection (the page's WebSocket). Held sessions never
// expire; Release undoes Hold.
func (s *Session) Hold()    { s.conns.Add(1) }
func (s *Session) Release() { s.conns.Add(-1) }

// Connected reports whether a connection currently holds the session.
func (s *Session) Connected() bool { return s.conns.Load() > 0 }

func (s *Session) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, s.lastSeen.Load()))
}

// Hooks let callers observe the session lifecycle, e.g. for metrics.
type Hooks struct {
	OnOpen  func()
	OnClose func(reason string)
}

// Options configures a Registry.
type Options struct {
	// TTL is how long an unconnected session may stay idle.
	TTL time.Duration
	// MaxSessions caps the live sessions. Opening past the cap evicts the
	// least recently seen unconnected one.
	MaxSessions int
	Now         func() time.Time
	Hooks       Hooks
}

// Registry owns every live session.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	closed   bool

	bus   pubsub.Subscriber
	ttl   time.Duration
	max   int
	now   func() time.Time
	hooks Hooks
}

// DefaultMaxSessions is used when Options.MaxSessions is not set.
const DefaultMaxSessions = 10000

// NewRegistry creates a registry whose sessions subscribe to scroll events on bus.
func NewRegistry(bus pubsub.Subscriber, opts Options) *Registry {
	if opts.TTL <= 0 {
		opts.TTL = 30 * time.Minute
	}
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Registry{
		sessions: make(map[string]*Session),
		bus:      bus,
		ttl:      opts.TTL,
		max:      opts.MaxSessions,
		now:      opts.Now,
		hooks:    opts.Hooks,
	}
}

// Open starts a session for a new page load. The session holds no
// subscription until a connection attaches it, so pages that never open a
// socket cost a map entry and nothing else.
func (r *Registry) Open() (*Session, error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		ID:     uuid.NewString(),
		Nav:    navbar.NewController(),
		ctx:    ctx,
		cancel: cancel,
	}
	s.Touch(r.now())

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		cancel()
		return nil, ErrClosed
	}
	var evicted *Session
	if len(r.sessions) >= r.max {
		evicted = r.oldestIdleLocked()
		if evicted == nil {
			r.mu.Unlock()
			cancel()
			return nil, ErrFull
		}
		delete(r.sessions, evicted.ID)
	}
	r.sessions[s.ID] = s
	r.mu.Unlock()

	if evicted != nil {
		r.finish(evicted, ReasonEvicted)
	}
	if r.hooks.OnOpen != nil {
		r.hooks.OnOpen()
	}
	slog.Debug("Page session opened", "page_id", s.ID)
	return s, nil
}

// Attach subscribes the session's navigation bar to its scroll topic. It is
// a no-op for a session that is already attached.
func (r *Registry) Attach(s *Session) error {
	err := s.Nav.Attach(s.ctx, r.bus, s.ID)
	if errors.Is(err, navbar.ErrAttached) {
		return nil
	}
	return err
}

func (r *Registry) oldestIdleLocked() *Session {
	var oldest *Session
	for _, s := range r.sessions {
		if s.Connected() {
			continue
		}
		if oldest == nil || s.lastSeen.Load() < oldest.lastSeen.Load() {
			oldest = s
		}
	}
	return oldest
}

// Get looks up a live session and records activity on it.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()
	if ok {
		s.Touch(r.now())
	}
	return s, ok
}

// Close tears a session down: its scroll subscription is released and Done
// is closed. It reports whether the session was live.
func (r *Registry) Close(id, reason string) bool {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return false
	}
	r.finish(s, reason)
	return true
}

func (r *Registry) finish(s *Session, reason string) {
	s.cancel()
	if r.hooks.OnClose != nil {
		r.hooks.OnClose(reason)
	}
	slog.Debug("Page session closed", "page_id", s.ID, "reason", reason)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep closes sessions that have no live connection and have been idle
// longer than the TTL. It returns how many were closed.
func (r *Registry) Sweep() int {
	now := r.now()

	r.mu.Lock()
	var expired []string
	for id, s := range r.sessions {
		if s.conns.Load() == 0 && s.idleSince(now) > r.ttl {
			expired = append(expired, id)
		}
	}
	r.mu.Unlock()

	closed := 0
	for _, id := range expired {
		if r.Close(id, ReasonExpired) {
			closed++
		}
	}
	return closed
}

// Run sweeps expired sessions until ctx is done, then closes every session
// and refuses new ones.
func (r *Registry) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.Shutdown()
			return nil
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				slog.Info("Expired idle page sessions", "count", n)
			}
		}
	}
}

// Shutdown closes every live session.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	r.closed = true
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	for _, id := range ids {
		r.Close(id, ReasonShutdown)
	}
}

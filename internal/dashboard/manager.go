package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/event-dashboard/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSessionTTL is how long an idle session is kept.
const DefaultSessionTTL = 30 * time.Minute

// Manager holds the live sessions in memory, keyed by uuid.
type Manager struct {
	deps Deps
	opts Options
	ttl  time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty Manager. Non-positive ttl uses DefaultSessionTTL.
func NewManager(deps Deps, opts Options, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Manager{
		deps:     deps.withDefaults(),
		opts:     opts.withDefaults(),
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session on the category picker.
func (m *Manager) Create() *Session {
	s := NewSession(uuid.NewString(), m.deps, m.opts)

	m.mu.Lock()
	m.sessions[s.ID()] = s
	n := len(m.sessions)
	m.mu.Unlock()

	m.setGauge(n)
	m.deps.Logger.Debug("Session created", zap.String("session_id", s.ID()))
	return s
}

// Get returns a live session. Expired sessions are dropped on access.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	if m.expired(s, m.deps.Clock.Now()) {
		m.Delete(id)
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return s, nil
}

// Delete closes and forgets a session. Unknown ids are ignored.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	n := len(m.sessions)
	m.mu.Unlock()

	if !ok {
		return
	}
	s.Close()
	m.setGauge(n)
}

// Len returns the number of held sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep drops every idle session and returns how many were removed.
func (m *Manager) Sweep() int {
	now := m.deps.Clock.Now()

	m.mu.Lock()
	var stale []*Session
	for id, s := range m.sessions {
		if m.expired(s, now) {
			stale = append(stale, s)
			delete(m.sessions, id)
		}
	}
	n := len(m.sessions)
	m.mu.Unlock()

	for _, s := range stale {
		s.Close()
	}
	if len(stale) > 0 {
		m.setGauge(n)
		m.deps.Logger.Info("Expired idle sessions",
			zap.Int("removed", len(stale)),
			zap.Int("remaining", n))
	}
	return len(stale)
}

// Run sweeps on every interval tick until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := m.deps.Clock.NewTicker(interval)
	defer ticker.Stop()

	m.deps.Logger.Info("Session sweeper started", zap.Duration("interval", interval), zap.Duration("ttl", m.ttl))
	for {
		select {
		case <-ctx.Done():
			m.deps.Logger.Info("Session sweeper stopped")
			return
		case <-ticker.Chan():
			m.Sweep()
		}
	}
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return now.Sub(time.Unix(0, s.LastSeen())) > m.ttl
}

func (m *Manager) setGauge(n int) {
	if m.deps.Metrics == nil {
		return
	}
	m.deps.Metrics.ActiveSessions.Set(float64(n))
}

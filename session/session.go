package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"diag-hub/auth"
	"diag-hub/domain"
	"diag-hub/errors"
)

// janitorInterval is how often abandoned sessions are swept.
const janitorInterval = time.Minute

// Session is the per-connection interaction state. Each session is owned by
// exactly one user's request sequence and is never shared across users;
// the only states are unauthenticated and authenticated.
type Session struct {
	ID                uuid.UUID
	Authenticated     bool
	Page              domain.PageID
	FeedbackSubmitted bool
	LastSeen          time.Time
}

// Manager owns the live sessions of the process. The registry itself is
// shared across connections and guarded by a mutex, but each Session value
// is only ever mutated by its own request cycle. Sessions idle beyond the
// ttl are unreachable anyway (their tokens have expired) and are swept, so
// abandoned visitors never grow the registry without bound.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	gate     auth.Gate
	ttl      time.Duration
	log      *slog.Logger
}

func NewManager(gate auth.Gate, ttl time.Duration, log *slog.Logger) *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*Session),
		gate:     gate,
		ttl:      ttl,
		log:      log,
	}
}

// Begin creates a fresh unauthenticated session on the Home page.
func (m *Manager) Begin() *Session {
	s := &Session{
		ID:       uuid.New(),
		Page:     domain.PageHome,
		LastSeen: time.Now(),
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get resolves a live session by ID and refreshes its idle timestamp.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, errors.ErrSessionNotFound
	}
	s.LastSeen = time.Now()
	return s, nil
}

// Sweep evicts every session idle for longer than the ttl and reports how
// many were removed.
func (m *Manager) Sweep() int {
	cutoff := time.Now().Add(-m.ttl)
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if s.LastSeen.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.log.Info("Idle sessions swept", "removed", removed, "live", len(m.sessions))
	}
	return removed
}

// StartJanitor sweeps idle sessions in the background until ctx is done.
func (m *Manager) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Sweep()
			}
		}
	}()
}

// Login transitions the session to authenticated iff the submitted key
// matches the configured access key. On mismatch the session stays
// unauthenticated and ErrAuthFailed is returned for the caller to display;
// there is no lockout or attempt counting. A successful login must be
// followed by an immediate re-render so gated content is never stale.
func (m *Manager) Login(id uuid.UUID, submittedKey string) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}

	if err := m.gate.Check(submittedKey); err != nil {
		m.log.Info("Authentication rejected", "session", s.ID)
		return err
	}

	m.mu.Lock()
	s.Authenticated = true
	m.mu.Unlock()
	m.log.Info("Session authenticated", "session", s.ID)
	return nil
}

// Logout returns the session to the gate and resets navigation to the
// default page, regardless of where the user was.
func (m *Manager) Logout(id uuid.UUID) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}

	m.mu.Lock()
	s.Authenticated = false
	s.Page = domain.PageHome
	s.FeedbackSubmitted = false
	m.mu.Unlock()
	m.log.Info("Session logged out", "session", s.ID)
	return nil
}

// SetPage records the current navigation target. Unknown values have
// already been folded to Home by domain.ParsePage.
func (m *Manager) SetPage(id uuid.UUID, page domain.PageID) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}
	m.mu.Lock()
	s.Page = page
	m.mu.Unlock()
	return nil
}

// MarkFeedbackSubmitted flips the thank-you flag. This is a display
// convenience only, never a dedup mechanism: resubmission stays allowed.
func (m *Manager) MarkFeedbackSubmitted(id uuid.UUID) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}
	m.mu.Lock()
	s.FeedbackSubmitted = true
	m.mu.Unlock()
	return nil
}

// Count reports how many sessions are live.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// End destroys a session.
func (m *Manager) End(id uuid.UUID) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Package session tracks per-user session state: the selected processing
// mode and an optional user-supplied API key.
//
// This state is process-local and deliberately ephemeral. It is created
// on login, cleared on logout, and never written to durable storage —
// in particular, a user's API key only ever lives in this map for the
// lifetime of their session.
package session

import (
	"sync"
	"time"

	"github.com/legalease-app/legalease-api/internal/services/simplify"
)

// maxIdle matches the JWT lifetime: a session older than its token is
// unreachable anyway and can be dropped.
const maxIdle = 72 * time.Hour

// State is the session-scoped data for one user.
type State struct {
	Mode   simplify.Mode // empty until the user picks a mode
	APIKey string        // optional bring-your-own-key, chat mode only
}

// entry wraps State with bookkeeping for idle cleanup.
type entry struct {
	state    State
	lastSeen time.Time
}

// Manager owns all active sessions, keyed by user ID.
//
// Go Pattern: sync.RWMutex allows multiple concurrent readers but
// exclusive writers. Only Active is a pure read here; every other
// method mutates the map or an entry and takes the write lock.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*entry
}

// NewManager creates a session manager and starts its cleanup goroutine.
func NewManager() *Manager {
	m := &Manager{
		sessions: make(map[string]*entry),
	}
	go m.cleanup()
	return m
}

// Create initializes an empty session for a user. Called on login and
// registration; an existing session is reset, so logging in again drops
// any previously selected mode or key.
func (m *Manager) Create(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = &entry{lastSeen: time.Now()}
}

// Get returns a copy of the user's session state and whether a session
// exists. Returning a copy keeps callers from mutating shared state
// outside the lock. Get refreshes the entry's idle timestamp, so it
// needs the write lock despite being a lookup.
func (m *Manager) Get(userID string) (State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[userID]
	if !ok {
		return State{}, false
	}
	e.lastSeen = time.Now()
	return e.state, true
}

// SetMode records the user's processing mode choice and, for the chat
// mode, an optional session-scoped API key. Creates the session if the
// user doesn't have one (e.g., after a server restart with a still-valid
// token).
func (m *Manager) SetMode(userID string, mode simplify.Mode, apiKey string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[userID]
	if !ok {
		e = &entry{}
		m.sessions[userID] = e
	}
	e.state.Mode = mode
	e.state.APIKey = apiKey
	e.lastSeen = time.Now()
}

// Clear removes the user's session entirely, dropping the selected mode
// and any session API key. Called on logout.
func (m *Manager) Clear(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// Active returns the number of live sessions. Used by the health endpoint.
func (m *Manager) Active() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// cleanup periodically removes idle sessions to prevent memory leaks.
func (m *Manager) cleanup() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		m.mu.Lock()
		now := time.Now()
		for id, e := range m.sessions {
			if now.Sub(e.lastSeen) > maxIdle {
				delete(m.sessions, id)
			}
		}
		m.mu.Unlock()
	}
}

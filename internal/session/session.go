package session

import (
	"sync"

	"github.com/google/uuid"

	"smartchat/internal/store"
)

// Session is the per-browser-connection state: identity, provider selection
// and the in-memory transcript. It is created at connection start, destroyed
// on disconnect, and never shared between browsers — two sessions viewing the
// same username are not synchronized (last write wins).
type Session struct {
	ID       string
	Username string
	LoggedIn bool
	Provider string
	History  []store.Exchange
}

// Logout drops the identity and the in-memory transcript. Durable rows are
// untouched.
func (s *Session) Logout() {
	s.LoggedIn = false
	s.Username = ""
	s.History = nil
}

// Manager tracks live sessions keyed by the cookie-carried session ID.
type Manager struct {
	mu              sync.RWMutex
	sessions        map[string]*Session
	defaultProvider string
}

func NewManager(defaultProvider string) *Manager {
	return &Manager{
		sessions:        make(map[string]*Session),
		defaultProvider: defaultProvider,
	}
}

// Create makes a fresh logged-out session with a new ID.
func (m *Manager) Create() *Session {
	s := &Session{
		ID:       uuid.NewString(),
		Provider: m.defaultProvider,
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s
}

// Get returns the session for id, or nil if it does not exist.
func (m *Manager) Get(id string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// GetOrCreate resolves id to its live session, creating a fresh one when the
// id is unknown or empty.
func (m *Manager) GetOrCreate(id string) *Session {
	if id != "" {
		if s := m.Get(id); s != nil {
			return s
		}
	}
	return m.Create()
}

// Destroy ends the session lifecycle.
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Manager hands out carts keyed by an opaque session ID. Carts live for the
// process lifetime; there is exactly one cart per session and no
// cross-session sharing.
type Manager struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Cart)}
}

// Get returns the cart for the session, or nil if the session is unknown.
func (m *Manager) Get(sessionID string) *Cart {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.carts[sessionID]
}

// GetOrCreate returns the session's cart, creating the session when the ID
// is empty or unknown. The returned ID is the one the caller should keep.
func (m *Manager) GetOrCreate(sessionID string) (string, *Cart) {
	if sessionID != "" {
		if c := m.Get(sessionID); c != nil {
			return sessionID, c
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.NewString()
	c := New()
	m.carts[id] = c
	return id, c
}

// Drop forgets the session entirely.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
}

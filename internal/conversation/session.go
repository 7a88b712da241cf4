package conversation

import (
	"sync"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/profile"
)

// Session is the per-applicant intake state. Completed is monotonic: once
// set it never clears, and further answers are ignored.
type Session struct {
	ID        string
	Collected profile.RawExtraction
	Completed bool
}

// Store keeps sessions by id. Implementations guard their own map; turn
// serialization for a single session id stays with the caller.
type Store interface {
	Get(id string) (*Session, bool)
	Put(s *Session)
}

// MemoryStore is the in-process Store used by the server and the terminal
// intake loop.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

func (m *MemoryStore) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *MemoryStore) Put(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
}

package session

import (
	"sync"

	"travelchat/internal/logger"
)

// Store maps connection identifiers to their Session. Connections are
// handled on independent goroutines, so the map itself needs locking even
// though each Session is only ever touched by its own connection.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate returns the session for id, creating an empty one on first
// use. Idempotent: repeated calls with the same id return the same session
// until Destroy is called.
func (st *Store) GetOrCreate(id string) *Session {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[id]; ok {
		return s
	}
	s = newSession(id)
	st.sessions[id] = s
	logger.Debugf("Created session %s", id)
	return s
}

// Destroy removes the session and releases all offer data it held. Called
// when the owning connection closes, cleanly or otherwise.
func (st *Store) Destroy(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; ok {
		delete(st.sessions, id)
		logger.Debugf("Destroyed session %s", id)
	}
}

// Count returns the number of live sessions.
func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

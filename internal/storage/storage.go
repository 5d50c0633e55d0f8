package storage

import (
	"sync"

	"github.com/cedora-living/showroom/internal/staging"
)

// PreviewStore holds the live preview sessions, keyed by session ID.
type PreviewStore struct {
	sessions map[string]*staging.Session
	mu       sync.RWMutex
}

func New() *PreviewStore {
	return &PreviewStore{
		sessions: make(map[string]*staging.Session),
	}
}

func (s *PreviewStore) Get(sessionID string) (*staging.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, exists := s.sessions[sessionID]
	return session, exists
}

func (s *PreviewStore) Set(sessionID string, session *staging.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = session
}

func (s *PreviewStore) GetAll() map[string]*staging.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*staging.Session, len(s.sessions))
	for k, v := range s.sessions {
		result[k] = v
	}
	return result
}

// Delete closes the session and removes it from the store.
func (s *PreviewStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, exists := s.sessions[sessionID]; exists {
		session.Close()
		delete(s.sessions, sessionID)
	}
}

package mcp

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"staffline-agent/src/coordinate"
)

// DefaultSessionCacheSize bounds how many sessions the server remembers.
const DefaultSessionCacheSize = 128

// SessionStore keeps recent coordination sessions so repeated workflow runs can
// accumulate into one log. The least recently used session is evicted first.
type SessionStore struct {
	mu       sync.Mutex
	sessions *lru.Cache[string, *coordinate.Session]
}

// NewSessionStore creates a store holding at most size sessions.
func NewSessionStore(size int) (*SessionStore, error) {
	if size <= 0 {
		size = DefaultSessionCacheSize
	}
	cache, err := lru.New[string, *coordinate.Session](size)
	if err != nil {
		return nil, err
	}
	return &SessionStore{sessions: cache}, nil
}

// GetOrCreate returns the session with id, creating it when unknown.
// An empty id always creates a session with a fresh id.
func (s *SessionStore) GetOrCreate(id string) *coordinate.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if session, ok := s.sessions.Get(id); ok {
			return session
		}
	}
	session := coordinate.NewSession(id)
	s.sessions.Add(session.ID, session)
	return session
}

// Get returns a known session.
func (s *SessionStore) Get(id string) (*coordinate.Session, bool) {
	return s.sessions.Get(id)
}

// Len returns the number of remembered sessions.
func (s *SessionStore) Len() int {
	return s.sessions.Len()
}

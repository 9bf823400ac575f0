package session

import (
	"sync"
	"time"
)

// UserKey is the attribute holding the authenticated user.
const UserKey = "user"

// Session is server-side state correlated with a client via the session cookie. Its
// attributes may be read and written by concurrent requests; the later write wins.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu    sync.RWMutex
	attrs map[string]any
}

func newSession(id string, createdAt time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: createdAt,
		attrs:     make(map[string]any),
	}
}

// Get returns the attribute value and whether it is set.
func (s *Session) Get(key string) (value any, found bool) {
	s.mu.RLock()
	value, found = s.attrs[key]
	s.mu.RUnlock()

	return value, found
}

// Set stores the attribute, replacing the previous value if any.
func (s *Session) Set(key string, value any) {
	s.mu.Lock()
	s.attrs[key] = value
	s.mu.Unlock()
}

// Delete drops the attribute.
func (s *Session) Delete(key string) {
	s.mu.Lock()
	delete(s.attrs, key)
	s.mu.Unlock()
}

// Has indicates whether the attribute is set.
func (s *Session) Has(key string) bool {
	_, found := s.Get(key)
	return found
}

package session

import (
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/dchest/uniuri"
)

// Store is a process-wide registry of sessions. It is safe for concurrent use; the lock is
// held only for the duration of a single operation. Sessions are never evicted.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	clock    clock.Clock
	idLength int
	newID    func(int) string
}

// NewStore returns an empty store, issuing identifiers of idLength random characters.
// The clock stamps Session.CreatedAt.
func NewStore(clk clock.Clock, idLength int) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		clock:    clk,
		idLength: idLength,
		newID:    uniuri.NewLen,
	}
}

// GetOrCreate returns the live session of the id. If the id is empty or unknown, a new
// session is created under a freshly generated identifier and registered.
func (s *Store) GetOrCreate(id string) *Session {
	if session, found := s.Lookup(id); found {
		return session
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// never adopt the client-supplied id: a new session always gets a fresh one
	id = s.newID(s.idLength)
	for s.sessions[id] != nil {
		id = s.newID(s.idLength)
	}

	session := newSession(id, s.clock.Now())
	s.sessions[id] = session

	return session
}

// Lookup returns the live session of the id. It has no side effects.
func (s *Store) Lookup(id string) (*Session, bool) {
	if len(id) == 0 {
		return nil, false
	}

	s.mu.RLock()
	session, found := s.sessions[id]
	s.mu.RUnlock()

	return session, found
}

// HasAuthenticatedUser reports whether the id resolves to a live session holding a user.
func (s *Store) HasAuthenticatedUser(id string) bool {
	session, found := s.Lookup(id)
	return found && session.Has(UserKey)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

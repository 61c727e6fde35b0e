package session

import (
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Session owns the conversational state for one client: its memory and its
// message history. The embedded mutex serializes requests on the same
// session id; requests for different sessions never contend.
type Session struct {
	ID      string
	Memory  *Memory
	History *History

	mu sync.Mutex
}

// Lock acquires the per-session mutex for a read-modify-write sequence.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the per-session mutex.
func (s *Session) Unlock() { s.mu.Unlock() }

// Store maps session ids to sessions. It is the only shared mutable state
// in the engine. Capacity is bounded: least recently used sessions are
// evicted rather than accumulating for the process lifetime.
type Store struct {
	mu          sync.Mutex
	sessions    *lru.Cache[string, *Session]
	historySize int
}

// NewStore creates a session store holding at most capacity sessions.
func NewStore(capacity, historySize int) (*Store, error) {
	cache, err := lru.New[string, *Session](capacity)
	if err != nil {
		return nil, err
	}
	return &Store{sessions: cache, historySize: historySize}, nil
}

// GetOrCreate returns the session for id, allocating a fresh one under a
// new unique id when id is empty or unknown. It never fails.
func (s *Store) GetOrCreate(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != "" {
		if sess, ok := s.sessions.Get(id); ok {
			return sess
		}
	}
	return s.create()
}

// Memory returns the client memory for id, creating the session as a side
// effect if absent.
func (s *Store) Memory(id string) *Memory {
	return s.GetOrCreate(id).Memory
}

// History returns the conversation history for id, creating the session as
// a side effect if absent.
func (s *Store) History(id string) *History {
	return s.GetOrCreate(id).History
}

// Clear abandons the session under id and allocates a fresh one, returning
// the new id. The old entry is dropped from the store.
func (s *Store) Clear(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Remove(id)
	return s.create().ID
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Len()
}

// create allocates a fresh session. Caller holds s.mu.
func (s *Store) create() *Session {
	sess := &Session{
		ID:      uuid.NewString(),
		Memory:  NewMemory(),
		History: NewHistory(s.historySize),
	}
	s.sessions.Add(sess.ID, sess)
	return sess
}

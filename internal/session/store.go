package session

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Store keeps sessions in memory with a TTL so abandoned conversations are
// evicted instead of accumulating for the life of the process. It also hands
// out a per-session lock so concurrent turns for the same session serialize;
// turns for different sessions run independently.
type Store struct {
	cache *cache.Cache

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a Store. ttl is how long an idle session survives;
// purgeInterval is how often expired entries are swept.
func NewStore(ttl, purgeInterval time.Duration) *Store {
	s := &Store{
		cache: cache.New(ttl, purgeInterval),
		locks: make(map[string]*sync.Mutex),
	}
	// Drop the lock when its session is evicted, so the lock map does not
	// outgrow the session map. A lock that is currently held stays in the
	// map; deleting it would let a later Lock for the same id mint a fresh
	// mutex while the old one is still held, and two turns could overlap.
	// The holder re-saves the session when it finishes, so the entry stays
	// paired with a live session in the common case.
	s.cache.OnEvicted(func(id string, _ any) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if l, ok := s.locks[id]; ok && l.TryLock() {
			delete(s.locks, id)
			l.Unlock()
		}
	})
	return s
}

// Get returns the session for id, if it exists and has not expired.
func (s *Store) Get(id string) (*Session, bool) {
	v, found := s.cache.Get(id)
	if !found {
		return nil, false
	}
	return v.(*Session), true
}

// Save stores the session and refreshes its TTL.
func (s *Store) Save(sess *Session) {
	s.cache.Set(sess.ID, sess, cache.DefaultExpiration)
}

// GetOrCreate returns the existing session for id, or a new one. An empty or
// unknown id yields a fresh session (with a fresh UUID when id is empty).
func (s *Store) GetOrCreate(id string) *Session {
	if id != "" {
		if sess, found := s.Get(id); found {
			return sess
		}
	}
	sess := NewSession(id)
	s.Save(sess)
	return sess
}

// Delete removes the session for id.
func (s *Store) Delete(id string) {
	s.cache.Delete(id)
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	return s.cache.ItemCount()
}

// Lock acquires the exclusive lock for the given session id and returns the
// release function.
func (s *Store) Lock(id string) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Package cache provides the process-wide response cache: an in-memory
// key/value store with per-entry TTL, plus a Gin handler decorator that
// memoizes GET responses by normalized URL.
package cache

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultTTL is applied when a store is constructed without an explicit TTL.
const DefaultTTL = 600 * time.Second

type entry struct {
	value     interface{}
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// Store is an in-memory TTL cache keyed by normalized request URL. It is
// constructed once in main and handed to whatever needs it; there is no
// package-level instance. Entries live for the store's TTL unless
// invalidated earlier. Expired entries are dropped lazily on read.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	logger  *zap.Logger
}

// NewStore creates a cache store. A non-positive ttl falls back to
// DefaultTTL; a nil logger falls back to zap.NewNop().
func NewStore(ttl time.Duration, logger *zap.Logger) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		logger:  logger,
	}
}

// TTL returns the store's configured time-to-live.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Get returns the cached value for key. Expired entries are treated as
// absent and removed.
func (s *Store) Get(key string) (interface{}, bool) {
	now := time.Now()

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if e.expired(now) {
		s.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have
		// refreshed the entry since the read.
		if cur, ok := s.entries[key]; ok && cur.expired(now) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set stores value under key with the store's TTL, overwriting any existing
// entry.
func (s *Store) Set(key string, value interface{}) {
	s.SetWithTTL(key, value, s.ttl)
}

// SetWithTTL stores value under key with an explicit TTL.
func (s *Store) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		ttl = s.ttl
	}
	s.mu.Lock()
	s.entries[key] = entry{value: value, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
}

// Invalidate removes a single entry and reports whether it existed. Calling
// it on an absent key is not an error.
func (s *Store) Invalidate(key string) bool {
	s.mu.Lock()
	_, ok := s.entries[key]
	if ok {
		delete(s.entries, key)
	}
	s.mu.Unlock()
	return ok
}

// InvalidatePrefix removes every entry whose key starts with prefix and
// returns how many were removed. Mutating handlers use this to drop the
// collection listing and any parent-scoped listings in one call.
func (s *Store) InvalidatePrefix(prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for k := range s.entries {
		if strings.HasPrefix(k, prefix) {
			delete(s.entries, k)
			removed++
		}
	}
	return removed
}

// InvalidateAll clears the store unconditionally.
func (s *Store) InvalidateAll() {
	s.mu.Lock()
	s.entries = make(map[string]entry)
	s.mu.Unlock()
}

// Len reports the number of entries currently held, including entries that
// have expired but not yet been dropped.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

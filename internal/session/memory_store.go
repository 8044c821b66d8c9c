package session

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

type MemoryStore struct {
	mu    sync.Mutex
	cache *cache.Cache
}

// NewMemoryStore keeps sessions in process. A session is one cache entry, so
// all of its keys expire together ttl after the last write. Expired sessions
// are purged every 10 minutes.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

// values returns the session's map. Callers must not modify it.
func (s *MemoryStore) values(sid string) map[Key]string {
	if x, found := s.cache.Get(sid); found {
		return x.(map[Key]string)
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, sid string, key Key) (string, bool, error) {
	if sid == "" {
		return "", false, ErrInvalidSession
	}
	v, ok := s.values(sid)[key]
	return v, ok, nil
}

// Set replaces the session's map with an updated copy and renews its expiry.
func (s *MemoryStore) Set(_ context.Context, sid string, key Key, value string) error {
	if sid == "" {
		return ErrInvalidSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.values(sid)
	next := make(map[Key]string, len(current)+1)
	for k, v := range current {
		next[k] = v
	}
	next[key] = value
	s.cache.Set(sid, next, cache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sid string) error {
	if sid == "" {
		return ErrInvalidSession
	}
	s.mu.Lock()
	s.cache.Delete(sid)
	s.mu.Unlock()
	return nil
}

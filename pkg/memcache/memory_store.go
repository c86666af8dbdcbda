// pkg/memcache/memory_store.go
package mem

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryStore is an in-process Store bounded to maxEntries.
// Expired entries are dropped lazily on read and by the sweeper started with Start.
type MemoryStore struct {
	mu         sync.RWMutex
	data       map[string]entry
	maxEntries int
	now        func() time.Time

	stop chan struct{}
	done chan struct{}
}

func NewMemoryStore(maxEntries int) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]entry),
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return "", false, nil
	}

	if e.expired(s.now()) {
		s.mu.Lock()
		// re-check, a concurrent Set may have refreshed the key
		if cur, ok := s.data[key]; ok && cur.expired(s.now()) {
			delete(s.data, key)
		}
		s.mu.Unlock()
		return "", false, nil
	}
	return e.value, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[key]; !exists && s.maxEntries > 0 && len(s.data) >= s.maxEntries {
		s.evictLocked()
	}

	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.data[key] = e
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *MemoryStore) Flush(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]entry)
	return nil
}

// Len reports the number of stored entries, expired ones included until swept.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Sweep removes every expired entry and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

func (s *MemoryStore) sweepLocked(now time.Time) int {
	removed := 0
	for k, e := range s.data {
		if e.expired(now) {
			delete(s.data, k)
			removed++
		}
	}
	return removed
}

// evictLocked frees one slot: expired entries first, otherwise the entry closest to expiry.
// Entries without expiry go last.
func (s *MemoryStore) evictLocked() {
	if s.sweepLocked(s.now()) > 0 {
		return
	}

	var victim string
	var soonest time.Time
	found := false
	for k, e := range s.data {
		if !found {
			victim, soonest, found = k, e.expiresAt, true
			continue
		}
		if e.expiresAt.IsZero() {
			continue
		}
		if soonest.IsZero() || e.expiresAt.Before(soonest) {
			victim, soonest = k, e.expiresAt
		}
	}
	if found {
		delete(s.data, victim)
	}
}

// Start runs Sweep every interval until Stop is called.
func (s *MemoryStore) Start(interval time.Duration) {
	if interval <= 0 || s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}

func (s *MemoryStore) Stop() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop = nil
}

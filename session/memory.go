package session

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store. It is the default backing for the
// session engine and the standard test double.
type MemoryStore struct {
	mu       sync.RWMutex
	values   map[string]string
	watchers []func(key string)
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.values[key] = value
	watchers := s.snapshotWatchers()
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(key)
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	_, existed := s.values[key]
	delete(s.values, key)
	var watchers []func(key string)
	if existed {
		watchers = s.snapshotWatchers()
	}
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(key)
	}
	return nil
}

// OnChange registers a callback fired after every Set and after every
// Delete of an existing key. Callbacks run on the mutating goroutine.
func (s *MemoryStore) OnChange(fn func(key string)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.watchers = append(s.watchers, fn)
	s.mu.Unlock()
}

// snapshotWatchers must be called with the lock held.
func (s *MemoryStore) snapshotWatchers() []func(key string) {
	if len(s.watchers) == 0 {
		return nil
	}
	out := make([]func(key string), len(s.watchers))
	copy(out, s.watchers)
	return out
}

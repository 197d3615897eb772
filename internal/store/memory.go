package store

import "sync"

// MemoryStore keeps values for the lifetime of the process only.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (s *MemoryStore) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
}

func (s *MemoryStore) Clear(key string) {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
}

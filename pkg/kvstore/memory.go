package kvstore

import "sync"

// MemoryStore is the in-memory Store used by tests and ":memory:" runs.
type MemoryStore struct {
	mu sync.Mutex
	m  map[string]string

	// FailSet, when non-nil, is returned by every Set. Lets tests
	// simulate a full or broken backing store.
	FailSet error
}

func NewMemory() *MemoryStore {
	return &MemoryStore{m: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	if s.FailSet != nil {
		return s.FailSet
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *MemoryStore) Close() error { return nil }

package kv

import "sync"

// MemoryStore is an in-memory Store. It backs tests and the detached mode
// where no database has been opened yet: reads see only what this process
// wrote, and nothing survives exit.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value stored under namespace, or ("", false, nil) when absent.
func (s *MemoryStore) Get(namespace string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[namespace]
	return value, ok, nil
}

// Set overwrites the value stored under namespace.
func (s *MemoryStore) Set(namespace, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[namespace] = value
	return nil
}

// Remove deletes the namespace.
func (s *MemoryStore) Remove(namespace string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, namespace)
	return nil
}

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// memoryStore is a map-backed Store for tests and ephemeral runs. Values
// round-trip through JSON so behavior matches the durable implementation.
type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailWrites forces Set to fail; used to exercise persistence-failure
	// paths in tests.
	failWrites bool
}

// NewMemoryStore creates an empty in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{data: make(map[string][]byte)}
}

// NewFailingStore creates an in-memory Store whose writes always fail.
func NewFailingStore() Store {
	return &memoryStore{data: make(map[string][]byte), failWrites: true}
}

func (s *memoryStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

func (s *memoryStore) Set(ctx context.Context, key string, value interface{}) error {
	if s.failWrites {
		return fmt.Errorf("set %q: simulated write failure", key)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.data = make(map[string][]byte)
	s.mu.Unlock()
	return nil
}

// Package memory provides a map-backed blob store.
package memory

import (
	"context"
	"slices"
	"sync"
)

// Store is an in-process blob store. FailWrites makes every Put fail,
// which lets callers exercise persistence error paths.
type Store struct {
	mu         sync.Mutex
	blobs      map[string][]byte
	failWrites error
	writes     int
}

// New returns an empty store.
func New() *Store {
	return &Store{blobs: make(map[string][]byte)}
}

// Get returns a copy of the blob stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

// Put stores a copy of value under key, replacing any previous blob.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites != nil {
		return s.failWrites
	}
	s.blobs[key] = slices.Clone(value)
	s.writes++
	return nil
}

// Keys lists every stored key in name order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.blobs))
	for k := range s.blobs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

// FailWrites makes subsequent writes return err. A nil err restores writes.
func (s *Store) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = err
}

// Writes reports how many successful writes the store has taken.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

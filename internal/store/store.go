// Package store keeps live values in memory under string keys.
package store

import (
	"errors"
	"slices"
	"sync"
)

var (
	ErrNotFound = errors.New("value not found")
	ErrFull     = errors.New("store is full")
)

type Store[T any] struct {
	mu       sync.Mutex
	capacity int
	values   map[string]T
}

// Creates a new [Store] holding at most capacity values. A capacity of zero
// or less means no limit.
func New[T any](capacity int) *Store[T] {
	return &Store[T]{
		capacity: capacity,
		values:   make(map[string]T),
	}
}

// Retrieve a value from the store. If key is not present, [ErrNotFound] is
// returned.
func (s *Store[T]) Get(key string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[key]
	if !ok {
		return v, ErrNotFound
	}
	return v, nil
}

// Inserts a new key-value pair or updates an existing one. Inserting past
// capacity fails with [ErrFull]; updates always succeed.
func (s *Store[T]) Set(key string, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok && s.capacity > 0 && len(s.values) >= s.capacity {
		return ErrFull
	}
	s.values[key] = value
	return nil
}

// Deletes key from store without checking if it existed.
func (s *Store[T]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
}

func (s *Store[T]) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.values)
}

// Keys returns every key in sorted order.
func (s *Store[T]) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

package memory

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/store"
)

// entry pairs a stored value with the sequence number of its key's first insertion.
type entry[T any] struct {
	value T
	seq   uint64
}

// Store is a thread-safe, memory-resident implementation of store.EntityStore.
// It keeps values rather than pointers, so every read hands out a copy.
type Store[T store.Entity] struct {
	mu      sync.RWMutex
	items   map[uuid.UUID]entry[T]
	nextSeq uint64
}

// NewStore creates an empty Store.
func NewStore[T store.Entity]() *Store[T] {
	return &Store[T]{
		items: make(map[uuid.UUID]entry[T]),
	}
}

// Get returns the entity with the given id.
func (s *Store[T]) Get(id uuid.UUID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.items[id]
	return e.value, ok
}

// All returns every entity in order of first insertion.
func (s *Store[T]) All() []T {
	return s.Find(nil)
}

// Find returns the entities matching pred in order of first insertion.
// A nil pred matches everything. pred runs under the read lock and must not
// call back into the store.
func (s *Store[T]) Find(pred func(T) bool) []T {
	s.mu.RLock()
	matched := make([]entry[T], 0, len(s.items))
	for _, e := range s.items {
		if pred == nil || pred(e.value) {
			matched = append(matched, e)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(matched, func(a, b entry[T]) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		default:
			return 0
		}
	})

	out := make([]T, len(matched))
	for i, e := range matched {
		out[i] = e.value
	}
	return out
}

// Add inserts entity. An existing entity with the same id is overwritten
// and keeps its original position in the iteration order.
func (s *Store[T]) Add(entity T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := entity.EntityID()
	if existing, ok := s.items[id]; ok {
		s.items[id] = entry[T]{value: entity, seq: existing.seq}
		return entity
	}

	s.nextSeq++
	s.items[id] = entry[T]{value: entity, seq: s.nextSeq}
	return entity
}

// Update replaces the entity with the same id, if there is one.
func (s *Store[T]) Update(entity T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := entity.EntityID()
	existing, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}

	s.items[id] = entry[T]{value: entity, seq: existing.seq}
	return entity, true
}

// Delete removes the entity with the given id.
func (s *Store[T]) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}

// Len returns the number of stored entities.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// invalidEntity wraps a domain validation failure so that it matches both
// store.ErrInvalidEntity and the original validation error.
func invalidEntity(entity, operation string, err error) error {
	return store.NewStoreError(entity, operation, "entity failed validation",
		fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
}

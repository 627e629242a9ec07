package store

import "github.com/google/uuid"

// Entity is anything that can be kept in an EntityStore.
type Entity interface {
	EntityID() uuid.UUID
}

// EntityStore is a keyed collection of entities of one type, safe for
// concurrent use. Implementations hold copies: values passed in and
// returned are never shared with the store's internal state.
type EntityStore[T Entity] interface {
	// Get returns the entity with the given id, and false if there is none.
	Get(id uuid.UUID) (T, bool)

	// All returns a snapshot of every entity, in order of first insertion.
	All() []T

	// Find returns a snapshot of the entities matching pred, in order of first insertion.
	Find(pred func(T) bool) []T

	// Add inserts the entity, replacing any entity with the same id.
	Add(entity T) T

	// Update replaces the entity with the same id. It returns false and
	// changes nothing when no such entity exists.
	Update(entity T) (T, bool)

	// Delete removes the entity with the given id and reports whether it existed.
	Delete(id uuid.UUID) bool

	// Len returns the number of stored entities.
	Len() int
}

package store

import (
	"errors"
	"sort"
)

// ErrNotFound is returned by Read when no entity has the requested id.
// Services translate it into their own not-found errors.
var ErrNotFound = errors.New("entity not found")

// Entity is anything the store can key by id.
type Entity interface {
	EntityID() int64
}

// Store is a keyed in-memory collection for one entity kind. E must be a
// value type: entities are stored and returned by value, so callers always
// work on copies and can never alias live store state.
//
// The store does no locking of its own. All callers are expected to run on
// the single ledger worker (see the ledger package); an implementation that
// calls it from multiple goroutines must bring its own mutual exclusion.
type Store[E Entity] struct {
	items map[int64]E
}

// New creates an empty store.
func New[E Entity]() *Store[E] {
	return &Store[E]{items: make(map[int64]E)}
}

// Create upserts the entity under its id and returns the stored value.
// There is no existence check: creating over an existing id overwrites it.
func (s *Store[E]) Create(e E) E {
	s.items[e.EntityID()] = e
	return e
}

// Update upserts the entity under its id. Updating an absent id inserts it.
func (s *Store[E]) Update(e E) E {
	s.items[e.EntityID()] = e
	return e
}

// Read returns the entity with the given id, or ErrNotFound.
func (s *Store[E]) Read(id int64) (E, error) {
	e, ok := s.items[id]
	if !ok {
		var zero E
		return zero, ErrNotFound
	}

	return e, nil
}

// Delete removes and returns the entity with the given id. Deleting an
// absent id is not an error; the zero value is returned.
func (s *Store[E]) Delete(id int64) E {
	e := s.items[id]
	delete(s.items, id)

	return e
}

// Select scans the whole collection, keeps entities matching keep, and
// returns them as a fresh slice sorted by less. Ties keep a stable order.
// There is no index beyond the primary key, so every call is O(n log n).
func (s *Store[E]) Select(keep func(E) bool, less func(a, b E) bool) []E {
	var found []E
	for _, e := range s.items {
		if keep(e) {
			found = append(found, e)
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return less(found[i], found[j]) })

	return found
}

// Len returns the number of stored entities.
func (s *Store[E]) Len() int {
	return len(s.items)
}

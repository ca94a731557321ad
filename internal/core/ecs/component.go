package ecs

import "sort"

// Removable is implemented by every store so the Registry can drop a handle
// from all of them at once.
type Removable interface {
	Remove(id EntityID)
}

// Store is a typed map from handle to per-entity data.
type Store[T any] struct {
	data map[EntityID]*T
}

func NewStore[T any](capacity int) *Store[T] {
	return &Store[T]{data: make(map[EntityID]*T, capacity)}
}

func (s *Store[T]) Set(id EntityID, v *T) { s.data[id] = v }

func (s *Store[T]) Get(id EntityID) (*T, bool) {
	v, ok := s.data[id]
	return v, ok
}

func (s *Store[T]) Remove(id EntityID) { delete(s.data, id) }

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.data[id]
	return ok
}

func (s *Store[T]) Len() int { return len(s.data) }

// Snapshot returns the stored handles ordered by slot index. Iterating the
// snapshot instead of the map keeps visits stable while the store changes.
func (s *Store[T]) Snapshot() []EntityID {
	ids := make([]EntityID, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Index() < ids[j].Index() })
	return ids
}

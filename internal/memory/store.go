// Package memory implements the in-memory reference backing store.
// It holds entities in an ordered slice behind a single mutex and
// accepts linear-scan lookup cost; it exists for tests, tooling, and
// as the semantic reference the persistent backends must match.
package memory

import (
	"context"
	"iter"
	"slices"
	"sync"

	"github.com/stowr-project/stowr/pkg/types"
)

// Compile-time contract checks, one per entity kind.
var (
	_ types.AssetRepository      = (*Store[types.Asset, types.Asset])(nil)
	_ types.LocationRepository   = (*Store[types.Location, types.Location])(nil)
	_ types.TagRepository        = (*Store[types.Tag, types.Tag])(nil)
	_ types.CollectionRepository = (*Store[types.Collection, types.Collection])(nil)
)

// Store is a mutex-guarded, insertion-ordered collection of entity
// snapshots. It exclusively owns the stored values: every operation
// clones on the way in and on the way out, so callers never hold a
// live alias into the collection.
type Store[E types.Entity[E, K], K any] struct {
	mu       sync.Mutex
	entities []E
}

// New creates an empty store for one entity kind.
func New[E types.Entity[E, K], K any]() *Store[E, K] {
	return &Store[E, K]{}
}

// Create inserts a new record after verifying no entity with the same
// identifier exists. The store is unchanged when ErrConflict is
// returned.
func (s *Store[E, K]) Create(ctx context.Context, entity E) (E, error) {
	var zero E
	if entity.EntityID().IsZero() {
		return zero, types.ErrInvalidID
	}
	if err := entity.Validate(); err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(entity.EntityID()) >= 0 {
		return zero, types.ErrConflict
	}
	s.entities = append(s.entities, entity.Clone())
	return entity.Clone(), nil
}

// Fetch returns the current value for id, or ok=false if absent.
func (s *Store[E, K]) Fetch(ctx context.Context, id types.ID[K]) (E, bool, error) {
	var zero E

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return zero, false, nil
	}
	return s.entities[i].Clone(), true, nil
}

// Update replaces the stored value for the entity's identifier with
// the supplied full snapshot. The store is unchanged when ErrNotFound
// is returned.
func (s *Store[E, K]) Update(ctx context.Context, entity E) (E, error) {
	var zero E
	if err := entity.Validate(); err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(entity.EntityID())
	if i < 0 {
		return zero, types.ErrNotFound
	}
	s.entities[i] = entity.Clone()
	return entity.Clone(), nil
}

// Delete removes the record for id, preserving the order of the
// remaining entities. Returns ErrNotFound if absent.
func (s *Store[E, K]) Delete(ctx context.Context, id types.ID[K]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return types.ErrNotFound
	}
	s.entities = slices.Delete(s.entities, i, i+1)
	return nil
}

// List returns a lazy sequence over the entities matching filter, in
// insertion order. Each range over the sequence snapshots the current
// store state under the lock, so restarting the sequence observes
// later mutations rather than replaying a cached result.
func (s *Store[E, K]) List(ctx context.Context, filter types.Filter[E]) iter.Seq2[E, error] {
	return func(yield func(E, error) bool) {
		s.mu.Lock()
		snapshot := make([]E, 0, len(s.entities))
		for _, e := range s.entities {
			if filter == nil || filter(e) {
				snapshot = append(snapshot, e.Clone())
			}
		}
		s.mu.Unlock()

		for _, e := range snapshot {
			if !yield(e, nil) {
				return
			}
		}
	}
}

// indexLocked returns the position of id in the collection, or -1.
// The caller must hold s.mu.
func (s *Store[E, K]) indexLocked(id types.ID[K]) int {
	for i, e := range s.entities {
		if e.EntityID() == id {
			return i
		}
	}
	return -1
}

package types

import (
	"context"
	"errors"
	"fmt"
	"iter"
)

// Repository is the uniform CRUD contract over one entity kind. It is
// the sole coupling point between frontends and storage: a frontend
// holds a Repository and never learns which backing store fulfils it.
//
// All operations confine their side effects to the store they target.
// Operations on the same identifier are linearized by the store; of
// two concurrent Creates for one identifier exactly one succeeds and
// the other observes ErrConflict. A sequence of calls is not atomic as
// a unit, only each individual call is.
type Repository[E Entity[E, K], K any] interface {
	// Create inserts a new record. Returns ErrConflict if an entity
	// with the same identifier already exists; the store is unchanged
	// on failure.
	Create(ctx context.Context, entity E) (E, error)

	// Fetch returns the current value for id, or ok=false if absent.
	// It fails only on a backend fault (ErrBackend).
	Fetch(ctx context.Context, id ID[K]) (E, bool, error)

	// Update replaces the stored value for the entity's identifier
	// with the supplied full snapshot. Returns ErrNotFound if no such
	// record exists; the store is unchanged on failure.
	Update(ctx context.Context, entity E) (E, error)

	// Delete removes the record for id. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id ID[K]) error

	// List returns a finite, lazy sequence of all entities matching
	// the filter (nil matches everything). The sequence is
	// restartable: each range re-evaluates against current store
	// state instead of replaying a cached result.
	List(ctx context.Context, filter Filter[E]) iter.Seq2[E, error]
}

// Filter selects entities during List. A nil Filter matches all.
type Filter[E any] func(E) bool

// Per-kind repository aliases, instantiated once per entity kind.
type (
	AssetRepository      = Repository[Asset, Asset]
	LocationRepository   = Repository[Location, Location]
	TagRepository        = Repository[Tag, Tag]
	CollectionRepository = Repository[Collection, Collection]
)

// Repository operation errors. Every failure a store surfaces wraps
// one of these; callers branch with errors.Is. None is process-fatal:
// NotFound and Conflict are recoverable by re-fetching or regenerating
// an identifier, InvalidID by correcting input, Backend by retrying
// after backoff.
var (
	ErrNotFound  = errors.New("entity not found")
	ErrConflict  = errors.New("entity already exists")
	ErrInvalidID = errors.New("invalid identifier")
	ErrBackend   = errors.New("backend failure")
)

// BackendError wraps a storage or I/O fault so that both ErrBackend
// and the underlying cause stay matchable through errors.Is.
func BackendError(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrBackend, cause)
}

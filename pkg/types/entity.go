package types

import (
	"errors"
	"time"
)

// Entity constrains the value types a Repository can store. E is the
// entity type itself and K its kind marker; in this package the two
// coincide (an Asset is identified by an ID[Asset]).
//
// Entities are value snapshots: a stored entity is never aliased by
// callers, so Clone must return a copy that shares no mutable state
// with the receiver.
type Entity[E any, K any] interface {
	// EntityID returns the identifier of this entity's own kind.
	EntityID() ID[K]

	// Clone returns an independent deep copy.
	Clone() E

	// Validate checks that the entity is well-formed enough to store.
	Validate() error
}

// Entity validation errors.
var (
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidQuantity = errors.New("quantity must not be negative")

	ErrAlreadyTagged       = errors.New("asset already carries the tag")
	ErrNotTagged           = errors.New("asset does not carry the tag")
	ErrAlreadyInCollection = errors.New("asset already belongs to the collection")
	ErrNotInCollection     = errors.New("asset does not belong to the collection")
)

// now returns the timestamp entities are stamped with. Truncated to
// whole seconds so snapshots survive a textual round-trip unchanged.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

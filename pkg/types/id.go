package types

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// ID is an opaque, kind-scoped entity identifier. The type parameter K
// is a phantom marker: it has no runtime representation, but it makes
// identifiers of different entity kinds distinct types, so an
// ID[Asset] can never be compared to or substituted for an
// ID[Location] even when the raw UUIDs coincide. The compiler enforces
// this; there is no runtime kind check to get wrong.
//
// The raw value is a UUID v7, so identifiers of one kind sort roughly
// by creation time. IDs are immutable and round-trip losslessly
// through their textual form.
type ID[K any] struct {
	value uuid.UUID
}

// NewID generates a fresh, globally unique identifier for kind K.
func NewID[K any]() ID[K] {
	id, err := uuid.NewV7()
	if err != nil {
		// Fall back to UUID v4 if v7 generation fails.
		id = uuid.New()
	}
	return ID[K]{value: id}
}

// ParseID recovers an identifier from its textual form.
// Returns an error wrapping ErrInvalidID if the text is malformed.
func ParseID[K any](text string) (ID[K], error) {
	u, err := uuid.Parse(text)
	if err != nil {
		return ID[K]{}, fmt.Errorf("%w: %q: %w", ErrInvalidID, text, err)
	}
	return ID[K]{value: u}, nil
}

// IDFromUUID wraps a raw UUID as an identifier of kind K.
func IDFromUUID[K any](u uuid.UUID) ID[K] {
	return ID[K]{value: u}
}

// String returns the canonical textual form. It is the lossless
// inverse of ParseID.
func (id ID[K]) String() string {
	return id.value.String()
}

// UUID returns the raw underlying value.
func (id ID[K]) UUID() uuid.UUID {
	return id.value
}

// IsZero reports whether the identifier is the zero value. Zero
// identifiers are never produced by NewID and are rejected by stores.
func (id ID[K]) IsZero() bool {
	return id.value == uuid.Nil
}

// Compare orders two identifiers of the same kind. It returns -1, 0,
// or 1. Ordering across kinds is not defined and does not type-check.
func (id ID[K]) Compare(other ID[K]) int {
	return bytes.Compare(id.value[:], other.value[:])
}

// MarshalText implements encoding.TextMarshaler.
func (id ID[K]) MarshalText() ([]byte, error) {
	return []byte(id.value.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID[K]) UnmarshalText(text []byte) error {
	parsed, err := ParseID[K](string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Per-kind identifier aliases and constructors. These are the names
// frontends are expected to use; the generic forms above exist so that
// stores can be written once for all kinds.
type (
	AssetID      = ID[Asset]
	LocationID   = ID[Location]
	TagID        = ID[Tag]
	CollectionID = ID[Collection]
)

// NewAssetID generates a fresh asset identifier.
func NewAssetID() AssetID { return NewID[Asset]() }

// NewLocationID generates a fresh location identifier.
func NewLocationID() LocationID { return NewID[Location]() }

// NewTagID generates a fresh tag identifier.
func NewTagID() TagID { return NewID[Tag]() }

// NewCollectionID generates a fresh collection identifier.
func NewCollectionID() CollectionID { return NewID[Collection]() }

package types

import (
	"slices"
	"time"
)

// Collection is a named grouping of assets. Membership is a list of
// typed asset identifiers; the referenced assets live in their own
// repository and are not embedded here.
type Collection struct {
	ID          CollectionID `json:"collection_id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Assets      []AssetID    `json:"asset_ids,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewCollection builds an empty collection snapshot with the given
// identifier and name.
func NewCollection(id CollectionID, name string) Collection {
	ts := now()
	return Collection{
		ID:        id,
		Name:      name,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// EntityID returns the collection's identifier.
func (c Collection) EntityID() CollectionID { return c.ID }

// Clone returns a deep copy sharing no state with the receiver.
func (c Collection) Clone() Collection {
	cp := c
	cp.Assets = slices.Clone(c.Assets)
	return cp
}

// Validate reports whether the collection is well-formed enough to store.
func (c Collection) Validate() error {
	if c.Name == "" {
		return ErrInvalidName
	}
	return nil
}

// Rename sets a new name. Returns ErrInvalidName for an empty name.
func (c *Collection) Rename(name string) error {
	if name == "" {
		return ErrInvalidName
	}
	c.Name = name
	c.UpdatedAt = now()
	return nil
}

// AddAsset adds an asset to the collection.
// Returns ErrAlreadyInCollection if the asset is already a member.
func (c *Collection) AddAsset(id AssetID) error {
	if slices.Contains(c.Assets, id) {
		return ErrAlreadyInCollection
	}
	c.Assets = append(c.Assets, id)
	c.UpdatedAt = now()
	return nil
}

// RemoveAsset removes an asset from the collection.
// Returns ErrNotInCollection if the asset is not a member.
func (c *Collection) RemoveAsset(id AssetID) error {
	i := slices.Index(c.Assets, id)
	if i < 0 {
		return ErrNotInCollection
	}
	c.Assets = slices.Delete(c.Assets, i, i+1)
	c.UpdatedAt = now()
	return nil
}

// Contains reports whether the asset is a member of the collection.
func (c Collection) Contains(id AssetID) bool {
	return slices.Contains(c.Assets, id)
}

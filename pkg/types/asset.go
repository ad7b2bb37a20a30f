package types

import (
	"slices"
	"time"
)

// Asset is a physical item tracked by the system. An asset may sit at
// a location and carry any number of tags; both references are typed
// identifiers, so an asset can never accidentally point at another
// asset where a location is expected.
type Asset struct {
	ID          AssetID    `json:"asset_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Quantity    int64      `json:"quantity"`
	Location    LocationID `json:"location_id"`
	Tags        []TagID    `json:"tag_ids,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewAsset builds an asset snapshot with the given identifier and
// name. Quantity starts at zero and the asset is unassigned to any
// location until SetLocation is called.
func NewAsset(id AssetID, name string) Asset {
	ts := now()
	return Asset{
		ID:        id,
		Name:      name,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// EntityID returns the asset's identifier.
func (a Asset) EntityID() AssetID { return a.ID }

// Clone returns a deep copy sharing no state with the receiver.
func (a Asset) Clone() Asset {
	cp := a
	cp.Tags = slices.Clone(a.Tags)
	return cp
}

// Validate reports whether the asset is well-formed enough to store.
func (a Asset) Validate() error {
	if a.Name == "" {
		return ErrInvalidName
	}
	if a.Quantity < 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// Rename sets a new name. Returns ErrInvalidName for an empty name.
func (a *Asset) Rename(name string) error {
	if name == "" {
		return ErrInvalidName
	}
	a.Name = name
	a.UpdatedAt = now()
	return nil
}

// SetQuantity replaces the on-hand quantity.
// Returns ErrInvalidQuantity for a negative value.
func (a *Asset) SetQuantity(quantity int64) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	a.Quantity = quantity
	a.UpdatedAt = now()
	return nil
}

// AddQuantity adjusts the on-hand quantity by delta, which may be
// negative. Returns ErrInvalidQuantity if the result would drop below
// zero; the quantity is unchanged on error.
func (a *Asset) AddQuantity(delta int64) error {
	if a.Quantity+delta < 0 {
		return ErrInvalidQuantity
	}
	a.Quantity += delta
	a.UpdatedAt = now()
	return nil
}

// SetLocation assigns the asset to a location. A zero LocationID
// clears the assignment.
func (a *Asset) SetLocation(id LocationID) {
	a.Location = id
	a.UpdatedAt = now()
}

// Tag adds a tag reference. Returns ErrAlreadyTagged if present.
func (a *Asset) Tag(id TagID) error {
	if slices.Contains(a.Tags, id) {
		return ErrAlreadyTagged
	}
	a.Tags = append(a.Tags, id)
	a.UpdatedAt = now()
	return nil
}

// Untag removes a tag reference. Returns ErrNotTagged if absent.
func (a *Asset) Untag(id TagID) error {
	i := slices.Index(a.Tags, id)
	if i < 0 {
		return ErrNotTagged
	}
	a.Tags = slices.Delete(a.Tags, i, i+1)
	a.UpdatedAt = now()
	return nil
}

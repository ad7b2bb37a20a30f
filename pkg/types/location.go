package types

import "time"

// Location is a place assets can be assigned to, such as a room,
// shelf, or warehouse.
type Location struct {
	ID          LocationID `json:"location_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewLocation builds a location snapshot with the given identifier
// and name.
func NewLocation(id LocationID, name string) Location {
	ts := now()
	return Location{
		ID:        id,
		Name:      name,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// EntityID returns the location's identifier.
func (l Location) EntityID() LocationID { return l.ID }

// Clone returns an independent copy. Location holds no reference
// fields, so a value copy suffices.
func (l Location) Clone() Location { return l }

// Validate reports whether the location is well-formed enough to store.
func (l Location) Validate() error {
	if l.Name == "" {
		return ErrInvalidName
	}
	return nil
}

// Rename sets a new name. Returns ErrInvalidName for an empty name.
func (l *Location) Rename(name string) error {
	if name == "" {
		return ErrInvalidName
	}
	l.Name = name
	l.UpdatedAt = now()
	return nil
}

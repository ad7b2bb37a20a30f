package types

import "time"

// Tag is a free-form label assets can carry.
type Tag struct {
	ID        TagID     `json:"tag_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTag builds a tag snapshot with the given identifier and name.
func NewTag(id TagID, name string) Tag {
	ts := now()
	return Tag{
		ID:        id,
		Name:      name,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// EntityID returns the tag's identifier.
func (t Tag) EntityID() TagID { return t.ID }

// Clone returns an independent copy.
func (t Tag) Clone() Tag { return t }

// Validate reports whether the tag is well-formed enough to store.
func (t Tag) Validate() error {
	if t.Name == "" {
		return ErrInvalidName
	}
	return nil
}

// Rename sets a new name. Returns ErrInvalidName for an empty name.
func (t *Tag) Rename(name string) error {
	if name == "" {
		return ErrInvalidName
	}
	t.Name = name
	t.UpdatedAt = now()
	return nil
}

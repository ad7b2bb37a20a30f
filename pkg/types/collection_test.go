package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionMembership(t *testing.T) {
	coll := NewCollection(NewCollectionID(), "field kit")
	asset := NewAssetID()

	assert.False(t, coll.Contains(asset))

	require.NoError(t, coll.AddAsset(asset))
	assert.True(t, coll.Contains(asset))
	assert.ErrorIs(t, coll.AddAsset(asset), ErrAlreadyInCollection)

	require.NoError(t, coll.RemoveAsset(asset))
	assert.False(t, coll.Contains(asset))
	assert.ErrorIs(t, coll.RemoveAsset(asset), ErrNotInCollection)
}

func TestCollectionCloneIsIndependent(t *testing.T) {
	coll := NewCollection(NewCollectionID(), "field kit")
	require.NoError(t, coll.AddAsset(NewAssetID()))

	cp := coll.Clone()
	assert.Equal(t, coll, cp)

	require.NoError(t, cp.AddAsset(NewAssetID()))
	assert.Len(t, coll.Assets, 1, "clone mutation must not leak into the original")
}

func TestCollectionValidate(t *testing.T) {
	coll := NewCollection(NewCollectionID(), "field kit")
	assert.NoError(t, coll.Validate())

	coll.Name = ""
	assert.ErrorIs(t, coll.Validate(), ErrInvalidName)
}

func TestLocationRename(t *testing.T) {
	loc := NewLocation(NewLocationID(), "Lab A")

	require.NoError(t, loc.Rename("Lab B"))
	assert.Equal(t, "Lab B", loc.Name)

	assert.ErrorIs(t, loc.Rename(""), ErrInvalidName)
}

func TestTagValidate(t *testing.T) {
	tag := NewTag(NewTagID(), "fragile")
	assert.NoError(t, tag.Validate())

	tag.Name = ""
	assert.ErrorIs(t, tag.Validate(), ErrInvalidName)
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAsset(t *testing.T) {
	id := NewAssetID()

	asset := NewAsset(id, "microscope")

	assert.Equal(t, id, asset.ID)
	assert.Equal(t, "microscope", asset.Name)
	assert.Zero(t, asset.Quantity)
	assert.True(t, asset.Location.IsZero(), "new asset should be unassigned")
	assert.NoError(t, asset.Validate())
}

func TestAssetValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Asset)
		wantErr error
	}{
		{
			name:   "valid asset",
			mutate: func(a *Asset) {},
		},
		{
			name:    "empty name rejected",
			mutate:  func(a *Asset) { a.Name = "" },
			wantErr: ErrInvalidName,
		},
		{
			name:    "negative quantity rejected",
			mutate:  func(a *Asset) { a.Quantity = -1 },
			wantErr: ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset := NewAsset(NewAssetID(), "microscope")
			tt.mutate(&asset)

			err := asset.Validate()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAssetRename(t *testing.T) {
	asset := NewAsset(NewAssetID(), "microscope")

	require.NoError(t, asset.Rename("electron microscope"))
	assert.Equal(t, "electron microscope", asset.Name)

	err := asset.Rename("")
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.Equal(t, "electron microscope", asset.Name, "name should not change on error")
}

func TestAssetQuantity(t *testing.T) {
	asset := NewAsset(NewAssetID(), "beaker")

	require.NoError(t, asset.SetQuantity(10))
	assert.Equal(t, int64(10), asset.Quantity)

	require.NoError(t, asset.AddQuantity(-4))
	assert.Equal(t, int64(6), asset.Quantity)

	assert.ErrorIs(t, asset.AddQuantity(-7), ErrInvalidQuantity)
	assert.Equal(t, int64(6), asset.Quantity, "quantity should not change on error")

	assert.ErrorIs(t, asset.SetQuantity(-1), ErrInvalidQuantity)
}

func TestAssetTagging(t *testing.T) {
	asset := NewAsset(NewAssetID(), "beaker")
	tag := NewTagID()

	require.NoError(t, asset.Tag(tag))
	assert.ErrorIs(t, asset.Tag(tag), ErrAlreadyTagged)
	assert.Len(t, asset.Tags, 1)

	require.NoError(t, asset.Untag(tag))
	assert.Empty(t, asset.Tags)
	assert.ErrorIs(t, asset.Untag(tag), ErrNotTagged)
}

func TestAssetCloneIsIndependent(t *testing.T) {
	asset := NewAsset(NewAssetID(), "beaker")
	require.NoError(t, asset.Tag(NewTagID()))

	cp := asset.Clone()
	assert.Equal(t, asset, cp)

	require.NoError(t, cp.Tag(NewTagID()))
	cp.Name = "flask"

	assert.Equal(t, "beaker", asset.Name)
	assert.Len(t, asset.Tags, 1, "clone mutation must not leak into the original")
}

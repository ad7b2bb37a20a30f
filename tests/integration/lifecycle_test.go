// End-to-end lifecycle tests exercising the composed store across
// every in-tree backend.
package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stowr-project/stowr/pkg/stowr"
	"github.com/stowr-project/stowr/pkg/types"
)

// openBackends returns a store per backend, each torn down with the test.
func openBackends(t *testing.T) map[string]*stowr.Store {
	t.Helper()

	stores := map[string]types.Config{
		"memory": {Backend: types.BackendMemory},
		"sqlite": {Backend: types.BackendSQLite, DataDir: t.TempDir()},
	}

	opened := make(map[string]*stowr.Store, len(stores))
	for name, config := range stores {
		store, err := stowr.Open(config)
		require.NoError(t, err, "open %s backend", name)
		t.Cleanup(func() { _ = store.Close() })
		opened[name] = store
	}
	return opened
}

func TestInventoryLifecycle(t *testing.T) {
	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			// Set up a location and a tag to reference.
			shelf, err := store.Locations.Create(ctx, types.NewLocation(types.NewLocationID(), "Shelf B3"))
			require.NoError(t, err)
			fragile, err := store.Tags.Create(ctx, types.NewTag(types.NewTagID(), "fragile"))
			require.NoError(t, err)

			// Create an asset, place it, tag it.
			asset := types.NewAsset(types.NewAssetID(), "Microscope")
			asset.Description = "Zeiss Primo Star"
			require.NoError(t, asset.SetQuantity(2))
			asset.SetLocation(shelf.ID)
			require.NoError(t, asset.Tag(fragile.ID))

			created, err := store.Assets.Create(ctx, asset)
			require.NoError(t, err)
			assert.Equal(t, asset.ID, created.ID)

			// Fetch it back and check every field survived.
			fetched, ok, err := store.Assets.Fetch(ctx, created.ID)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "Microscope", fetched.Name)
			assert.Equal(t, "Zeiss Primo Star", fetched.Description)
			assert.Equal(t, int64(2), fetched.Quantity)
			assert.Equal(t, shelf.ID, fetched.Location)
			assert.Equal(t, []types.TagID{fragile.ID}, fetched.Tags)

			// Update quantity and verify the new snapshot is served.
			require.NoError(t, fetched.AddQuantity(3))
			updated, err := store.Assets.Update(ctx, fetched)
			require.NoError(t, err)
			assert.Equal(t, int64(5), updated.Quantity)

			again, ok, err := store.Assets.Fetch(ctx, created.ID)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, int64(5), again.Quantity)

			// Gather it into a collection.
			kit := types.NewCollection(types.NewCollectionID(), "Field kit")
			require.NoError(t, kit.AddAsset(created.ID))
			storedKit, err := store.Collections.Create(ctx, kit)
			require.NoError(t, err)
			assert.True(t, storedKit.Contains(created.ID))

			// Delete and verify the record is gone.
			require.NoError(t, store.Assets.Delete(ctx, created.ID))
			_, ok, err = store.Assets.Fetch(ctx, created.ID)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestDuplicateCreateRejectedEverywhere(t *testing.T) {
	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			tag := types.NewTag(types.NewTagID(), "original")
			_, err := store.Tags.Create(ctx, tag)
			require.NoError(t, err)

			dup := tag
			dup.Name = "impostor"
			_, err = store.Tags.Create(ctx, dup)
			require.ErrorIs(t, err, types.ErrConflict)

			// The stored record must be the first write.
			got, ok, err := store.Tags.Fetch(ctx, tag.ID)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "original", got.Name)
		})
	}
}

func TestListIsRestartableAcrossBackends(t *testing.T) {
	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			want := make(map[types.LocationID]bool)
			for _, n := range []string{"Lab A", "Lab B", "Storage"} {
				loc, err := store.Locations.Create(ctx, types.NewLocation(types.NewLocationID(), n))
				require.NoError(t, err)
				want[loc.ID] = true
			}

			seq := store.Locations.List(ctx, nil)
			for range 2 {
				got := make(map[types.LocationID]bool)
				for loc, err := range seq {
					require.NoError(t, err)
					got[loc.ID] = true
				}
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestKindIsolationAcrossBackends(t *testing.T) {
	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			loc, err := store.Locations.Create(ctx, types.NewLocation(types.NewLocationID(), "Bench"))
			require.NoError(t, err)

			// The same raw UUID under a different kind is a distinct key.
			asset := types.NewAsset(types.IDFromUUID[types.Asset](loc.ID.UUID()), "Bench-shaped asset")
			_, err = store.Assets.Create(ctx, asset)
			require.NoError(t, err)

			_, ok, err := store.Tags.Fetch(ctx, types.IDFromUUID[types.Tag](loc.ID.UUID()))
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

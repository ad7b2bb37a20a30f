package postgres

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stowr-project/stowr/pkg/types"
)

// dsnEnv names the environment variable carrying the test DSN. The
// suite needs a reachable server, so it is opt-in.
const dsnEnv = "STOWR_TEST_POSTGRES_DSN"

func openTestBackend(t *testing.T) *Backend {
	t.Helper()
	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		t.Skipf("set %s to run postgres backend tests", dsnEnv)
	}
	backend, err := Open(types.Config{Backend: types.BackendPostgres, DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })
	return backend
}

func TestOpenRejectsUnreachableServer(t *testing.T) {
	_, err := Open(types.Config{
		Backend: types.BackendPostgres,
		DSN:     "postgres://localhost:1/stowr?connect_timeout=1",
	})
	assert.ErrorIs(t, err, types.ErrBackend)
}

func TestConcurrentCreateSameIDLinearizes(t *testing.T) {
	ctx := context.Background()
	backend := openTestBackend(t)
	store := NewStore[types.Tag, types.Tag](backend.DB(), TableTags)

	tag := types.NewTag(types.NewTagID(), "contended")
	defer func() { _ = store.Delete(ctx, tag.ID) }()

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.Create(ctx, tag)
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, types.ErrConflict):
			conflicts++
		}
	}
	assert.Equal(t, 1, successes, "exactly one concurrent create may succeed")
	assert.Equal(t, workers-1, conflicts)

	fetched, ok, err := store.Fetch(ctx, tag.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, tag, fetched)
}

func TestLocationLifecycleScenario(t *testing.T) {
	ctx := context.Background()
	backend := openTestBackend(t)
	store := NewStore[types.Location, types.Location](backend.DB(), TableLocations)

	labA := types.NewLocation(types.NewLocationID(), "Lab A")

	_, err := store.Create(ctx, labA)
	require.NoError(t, err)
	defer func() { _ = store.Delete(ctx, labA.ID) }()

	fetched, ok, err := store.Fetch(ctx, labA.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, labA, fetched)

	_, err = store.Create(ctx, labA)
	assert.ErrorIs(t, err, types.ErrConflict)

	require.NoError(t, store.Delete(ctx, labA.ID))

	_, ok, err = store.Fetch(ctx, labA.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	labB := labA
	labB.Name = "Lab B"
	_, err = store.Update(ctx, labB)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

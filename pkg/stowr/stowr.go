// Package stowr is the composition root of the storage layer. Open
// constructs the backing store named by a Config and hands back one
// repository per entity kind; the caller owns the returned Store and
// closes it at shutdown. There is no ambient singleton.
package stowr

import (
	"github.com/stowr-project/stowr/internal/memory"
	"github.com/stowr-project/stowr/internal/postgres"
	"github.com/stowr-project/stowr/internal/sqlite"
	"github.com/stowr-project/stowr/pkg/types"
)

// Store bundles the per-kind repositories backed by one backing store.
// All repositories share the backend's lifecycle: after Close, their
// operations fail with ErrBackend (persistent backends) and must not
// be used.
type Store struct {
	Assets      types.AssetRepository
	Locations   types.LocationRepository
	Tags        types.TagRepository
	Collections types.CollectionRepository

	closer func() error
}

// Open validates the config and constructs the selected backend.
func Open(config types.Config) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Backend {
	case types.BackendMemory:
		return &Store{
			Assets:      memory.New[types.Asset, types.Asset](),
			Locations:   memory.New[types.Location, types.Location](),
			Tags:        memory.New[types.Tag, types.Tag](),
			Collections: memory.New[types.Collection, types.Collection](),
		}, nil

	case types.BackendSQLite:
		backend, err := sqlite.Open(config)
		if err != nil {
			return nil, err
		}
		db := backend.DB()
		return &Store{
			Assets:      sqlite.NewStore[types.Asset, types.Asset](db, sqlite.TableAssets),
			Locations:   sqlite.NewStore[types.Location, types.Location](db, sqlite.TableLocations),
			Tags:        sqlite.NewStore[types.Tag, types.Tag](db, sqlite.TableTags),
			Collections: sqlite.NewStore[types.Collection, types.Collection](db, sqlite.TableCollections),
			closer:      backend.Close,
		}, nil

	case types.BackendPostgres:
		backend, err := postgres.Open(config)
		if err != nil {
			return nil, err
		}
		db := backend.DB()
		return &Store{
			Assets:      postgres.NewStore[types.Asset, types.Asset](db, postgres.TableAssets),
			Locations:   postgres.NewStore[types.Location, types.Location](db, postgres.TableLocations),
			Tags:        postgres.NewStore[types.Tag, types.Tag](db, postgres.TableTags),
			Collections: postgres.NewStore[types.Collection, types.Collection](db, postgres.TableCollections),
			closer:      backend.Close,
		}, nil

	default:
		// Unreachable: Validate rejects unknown backends.
		return nil, types.ErrBackendUnknown
	}
}

// Close releases backend resources. Idempotent; a nil closer (memory
// backend) makes Close a no-op.
func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

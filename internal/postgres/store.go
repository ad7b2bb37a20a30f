// Package postgres implements the Postgres backing store. It mirrors
// the SQLite backend's semantics over JSONB rows and exists for
// deployments where the store must be shared across hosts. The schema
// is an implementation detail of this package.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"iter"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver

	"github.com/stowr-project/stowr/pkg/types"
)

// Compile-time contract checks, one per entity kind.
var (
	_ types.AssetRepository      = (*Store[types.Asset, types.Asset])(nil)
	_ types.LocationRepository   = (*Store[types.Location, types.Location])(nil)
	_ types.TagRepository        = (*Store[types.Tag, types.Tag])(nil)
	_ types.CollectionRepository = (*Store[types.Collection, types.Collection])(nil)
)

// Table names, one per entity kind.
const (
	TableAssets      = "assets"
	TableLocations   = "locations"
	TableTags        = "tags"
	TableCollections = "collections"
)

// schemaDDL creates one JSONB document table per entity kind.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS assets (id TEXT PRIMARY KEY, data JSONB NOT NULL);`,
	`CREATE TABLE IF NOT EXISTS locations (id TEXT PRIMARY KEY, data JSONB NOT NULL);`,
	`CREATE TABLE IF NOT EXISTS tags (id TEXT PRIMARY KEY, data JSONB NOT NULL);`,
	`CREATE TABLE IF NOT EXISTS collections (id TEXT PRIMARY KEY, data JSONB NOT NULL);`,
}

// Backend owns the Postgres connection shared by the per-kind stores.
type Backend struct {
	db *sql.DB
}

// Open connects to the database named by the DSN, verifies the
// connection, and applies the schema.
func Open(config types.Config) (*Backend, error) {
	db, err := sql.Open("pgx", config.DSN)
	if err != nil {
		return nil, types.BackendError("open postgres", err)
	}

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, types.BackendError("ping postgres", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			db.Close()
			return nil, types.BackendError("apply schema", err)
		}
	}

	return &Backend{db: db}, nil
}

// DB exposes the underlying connection to the per-kind stores.
func (b *Backend) DB() *sql.DB { return b.db }

// Close releases the database connection. Idempotent.
func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}

// Store fulfils the repository contract for one entity kind over one
// Postgres table.
type Store[E types.Entity[E, K], K any] struct {
	db    *sql.DB
	table string
}

// NewStore creates a repository over the given table.
func NewStore[E types.Entity[E, K], K any](db *sql.DB, table string) *Store[E, K] {
	return &Store[E, K]{db: db, table: table}
}

// uniqueViolation is the Postgres error code raised when an insert
// fails a primary-key or unique constraint.
const uniqueViolation = "23505"

// Create inserts a new record. The primary key linearizes concurrent
// creates for one identifier: the losing insert fails the constraint
// and surfaces as ErrConflict, and the winner's row stays untouched.
func (s *Store[E, K]) Create(ctx context.Context, entity E) (E, error) {
	var zero E
	if entity.EntityID().IsZero() {
		return zero, types.ErrInvalidID
	}
	if err := entity.Validate(); err != nil {
		return zero, err
	}

	data, err := json.Marshal(entity)
	if err != nil {
		return zero, types.BackendError("encode entity", err)
	}

	if _, err := s.db.ExecContext(ctx,
		fmt.Sprintf("INSERT INTO %s (id, data) VALUES ($1, $2)", s.table),
		entity.EntityID().String(), string(data),
	); err != nil {
		if isUniqueViolation(err) {
			return zero, types.ErrConflict
		}
		return zero, types.BackendError("insert entity", err)
	}
	return entity.Clone(), nil
}

// isUniqueViolation reports whether err is a unique or primary-key
// constraint failure from the server.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Fetch returns the current value for id, or ok=false if absent.
func (s *Store[E, K]) Fetch(ctx context.Context, id types.ID[K]) (E, bool, error) {
	var zero E

	var raw []byte
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT data FROM %s WHERE id = $1", s.table), id.String(),
	).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return zero, false, nil
	case err != nil:
		return zero, false, types.BackendError("select entity", err)
	}

	var entity E
	if err := json.Unmarshal(raw, &entity); err != nil {
		return zero, false, types.BackendError("decode entity", err)
	}
	return entity, true, nil
}

// Update replaces the stored snapshot for the entity's identifier.
// Returns ErrNotFound when no row matched.
func (s *Store[E, K]) Update(ctx context.Context, entity E) (E, error) {
	var zero E
	if err := entity.Validate(); err != nil {
		return zero, err
	}

	data, err := json.Marshal(entity)
	if err != nil {
		return zero, types.BackendError("encode entity", err)
	}

	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE %s SET data = $1 WHERE id = $2", s.table),
		string(data), entity.EntityID().String(),
	)
	if err != nil {
		return zero, types.BackendError("update entity", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return zero, types.BackendError("rows affected", err)
	}
	if affected == 0 {
		return zero, types.ErrNotFound
	}
	return entity.Clone(), nil
}

// Delete removes the record for id. Returns ErrNotFound if absent.
func (s *Store[E, K]) Delete(ctx context.Context, id types.ID[K]) error {
	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE id = $1", s.table), id.String(),
	)
	if err != nil {
		return types.BackendError("delete entity", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return types.BackendError("rows affected", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// List returns a lazy sequence over the matching entities ordered by
// identifier. Each range issues a fresh query.
func (s *Store[E, K]) List(ctx context.Context, filter types.Filter[E]) iter.Seq2[E, error] {
	return func(yield func(E, error) bool) {
		var zero E

		rows, err := s.db.QueryContext(ctx,
			fmt.Sprintf("SELECT data FROM %s ORDER BY id", s.table))
		if err != nil {
			yield(zero, types.BackendError("select entities", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var raw []byte
			if err := rows.Scan(&raw); err != nil {
				yield(zero, types.BackendError("scan row", err))
				return
			}
			var entity E
			if err := json.Unmarshal(raw, &entity); err != nil {
				yield(zero, types.BackendError("decode entity", err))
				return
			}
			if filter != nil && !filter(entity) {
				continue
			}
			if !yield(entity, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(zero, types.BackendError("iterate rows", err))
		}
	}
}

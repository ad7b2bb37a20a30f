package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"iter"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/stowr-project/stowr/pkg/types"
)

// Compile-time contract checks, one per entity kind.
var (
	_ types.AssetRepository      = (*Store[types.Asset, types.Asset])(nil)
	_ types.LocationRepository   = (*Store[types.Location, types.Location])(nil)
	_ types.TagRepository        = (*Store[types.Tag, types.Tag])(nil)
	_ types.CollectionRepository = (*Store[types.Collection, types.Collection])(nil)
)

// Store fulfils the repository contract for one entity kind over one
// SQLite table. Entities cross the boundary by JSON encoding, so every
// read hands the caller a freshly decoded value with no aliasing into
// backend state.
type Store[E types.Entity[E, K], K any] struct {
	db    *sql.DB
	table string
}

// NewStore creates a repository over the given table.
func NewStore[E types.Entity[E, K], K any](db *sql.DB, table string) *Store[E, K] {
	return &Store[E, K]{db: db, table: table}
}

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
		"INSERT INTO "+s.table+" (id, data) VALUES (?, ?)",
		entity.EntityID().String(), string(data),
	); err != nil {
		if isUniqueViolation(err) {
			return zero, types.ErrConflict
		}
		return zero, types.BackendError("insert entity", err)
	}
	return entity.Clone(), nil
}

// isUniqueViolation reports whether err is a primary-key or unique
// constraint failure from the driver.
func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT,
		sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY,
		sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
		return true
	}
	return false
}

// Fetch returns the current value for id, or ok=false if absent.
func (s *Store[E, K]) Fetch(ctx context.Context, id types.ID[K]) (E, bool, error) {
	var zero E

	var raw []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM "+s.table+" WHERE id = ?", id.String(),
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
// Returns ErrNotFound when no row matched; nothing is written then.
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
		"UPDATE "+s.table+" SET data = ? WHERE id = ?",
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
		"DELETE FROM "+s.table+" WHERE id = ?", id.String(),
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
// identifier. Each range issues a fresh query, so restarting the
// sequence re-evaluates against current database state.
func (s *Store[E, K]) List(ctx context.Context, filter types.Filter[E]) iter.Seq2[E, error] {
	return func(yield func(E, error) bool) {
		var zero E

		rows, err := s.db.QueryContext(ctx,
			"SELECT data FROM "+s.table+" ORDER BY id")
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

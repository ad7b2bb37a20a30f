// Package sqlite implements the SQLite backing store. It fulfils the
// same repository contract as the in-memory store but keeps one table
// per entity kind, giving indexed primary-key lookup and durability
// across process restarts. The row layout is an implementation detail
// of this package; nothing outside it may depend on the schema.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/stowr-project/stowr/pkg/types"
)

// databaseFile is the name of the SQLite database inside DataDir.
const databaseFile = "stowr.db"

// Backend owns the SQLite connection shared by the per-kind stores.
type Backend struct {
	db *sql.DB
}

// Open creates the data directory if needed, opens the database, and
// applies the schema. The schema uses IF NOT EXISTS throughout, so
// opening an existing database preserves its contents.
func Open(config types.Config) (*Backend, error) {
	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	// WAL plus a busy timeout makes concurrent writers queue on the
	// write lock instead of failing with SQLITE_BUSY, so a racing
	// insert reaches the primary-key constraint.
	dsn := filepath.Join(dataDir, databaseFile) +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, types.BackendError("open database", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
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

// Shared helpers for stowr CLI commands.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"

	"github.com/stowr-project/stowr/pkg/stowr"
	"github.com/stowr-project/stowr/pkg/types"
)

// openStore resolves directories and configuration, then opens the
// configured backing store. The caller must defer store.Close().
func openStore() (*stowr.Store, error) {
	backend := configBackend
	if backend == "" {
		backend = defaultBackend
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store, err := stowr.Open(types.Config{
		Backend: backend,
		DataDir: dataDir,
		DSN:     configDSN,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// collectList drains a repository listing into a slice.
func collectList[E any](seq iter.Seq2[E, error]) ([]E, error) {
	var out []E
	for e, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// isNotFound returns true if the error wraps ErrNotFound.
func isNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound)
}

// isConflict returns true if the error wraps ErrConflict.
func isConflict(err error) bool {
	return errors.Is(err, types.ErrConflict)
}

// shortID truncates an identifier to its first 8 characters for
// human-readable listings.
func shortID(id fmt.Stringer) string {
	s := id.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

// cliContext returns the context CLI operations run under.
func cliContext() context.Context {
	return context.Background()
}

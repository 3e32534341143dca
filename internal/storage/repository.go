// Package storage contains the storage-agnostic contracts for the load
// stage: a Repository interface over the local relational store, a factory
// keyed by backend kind, and a DDL registry so callers never import concrete
// backends. Backends self-register from init(); importing storage/all (even
// blank) makes every built-in backend available.
package storage

import (
	"context"
	"fmt"
	"sync"
)

// Config selects and configures a backend.
type Config struct {
	// Kind selects the backend implementation, e.g. "sqlite" or "postgres".
	Kind string

	// DSN is the backend connection string: a file path or file: URI for
	// SQLite, a postgresql:// URL for Postgres.
	DSN string
}

// Repository is the minimal surface the load stage needs. Table names are
// passed per call because one store holds several dataset tables.
type Repository interface {
	// TableExists reports whether table exists in the store.
	TableExists(ctx context.Context, table string) (bool, error)

	// Exec executes an arbitrary SQL statement, typically DDL.
	Exec(ctx context.Context, sql string) error

	// CopyFrom bulk-inserts rows (aligned to columns order) into table using
	// the backend's most efficient primitive, atomically: either every row is
	// inserted or none are.
	CopyFrom(ctx context.Context, table string, columns []string, rows [][]any) (int64, error)

	// CountRows returns the row count of table.
	CountRows(ctx context.Context, table string) (int64, error)

	// TableColumns returns table's column names in definition order.
	TableColumns(ctx context.Context, table string) ([]string, error)

	// Close releases the underlying connection(s).
	Close()
}

// Factory constructs a Repository for one backend kind.
type Factory func(ctx context.Context, cfg Config) (Repository, error)

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

// Register registers (or replaces) the factory for kind. It is called from
// backend packages' init functions.
func Register(kind string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[kind] = f
}

// New opens a Repository for cfg.Kind. Unknown kinds are an error listing
// nothing registered; the usual cause is a missing storage/all import.
func New(ctx context.Context, cfg Config) (Repository, error) {
	mu.RLock()
	f, ok := factories[cfg.Kind]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no storage backend registered for kind=%q", cfg.Kind)
	}
	return f(ctx, cfg)
}

// Package storage contains the storage-agnostic contracts for writing
// datasets to a relational database, plus the driver registry that concrete
// backends (mysql, postgres, sqlite, mssql) plug into at init time.
package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Repository is an open connection to one database. Implementations wrap
// their driver's pool; Close releases it. Insert appends rows to an existing
// table; there is no update or delete path.
type Repository interface {
	// Ping verifies the connection is usable.
	Ping(ctx context.Context) error

	// Exec runs a statement that returns no rows (typically DDL).
	Exec(ctx context.Context, sql string) error

	// Insert appends rows into table. Each row must align with columns; the
	// whole call is one transaction and reports the number of rows written.
	Insert(ctx context.Context, table string, columns []string, rows [][]any) (int64, error)

	// Close releases the underlying pool. Safe to call once.
	Close()
}

// Config carries the connection parameters handed to a backend factory.
// Backends assemble their own DSN from the discrete fields unless DSN is set,
// in which case it is passed to the driver verbatim.
type Config struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Database string
	Params   map[string]string
	DSN      string
}

// Factory opens a Repository for one driver kind.
type Factory func(ctx context.Context, cfg Config) (Repository, error)

// ErrUnknownDriver is returned by Open for an unregistered driver kind.
var ErrUnknownDriver = errors.New("storage: unknown driver")

var (
	regMu     sync.RWMutex
	factories = map[string]Factory{}
)

// Register makes a backend available under the given driver kind. It is
// called from backend packages' init functions; importing
// storage/all wires in every built-in backend.
func Register(kind string, f Factory) {
	regMu.Lock()
	defer regMu.Unlock()
	factories[kind] = f
}

// Drivers returns the registered driver kinds, sorted.
func Drivers() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	kinds := make([]string, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Open constructs a Repository for cfg.Driver. The returned repository must
// be closed by the caller on every exit path.
func Open(ctx context.Context, cfg Config) (Repository, error) {
	regMu.RLock()
	f, ok := factories[cfg.Driver]
	regMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrUnknownDriver, cfg.Driver, Drivers())
	}
	return f(ctx, cfg)
}

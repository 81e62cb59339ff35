package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/jarretjeter/Spotify-Data-Loader/internal/schema"
)

// Dialect renders schema definitions into one backend's SQL. Backends
// register theirs at init time alongside their Factory.
type Dialect struct {
	// CreateTable renders an idempotent create statement: running it against
	// a database that already has the table must not error and must not
	// touch existing data.
	CreateTable func(t schema.Table) (string, error)

	// DropTable renders a drop-if-exists statement.
	DropTable func(table string) string
}

var (
	dialectMu sync.RWMutex
	dialects  = map[string]Dialect{}
)

// RegisterDialect registers the DDL renderer for a driver kind.
func RegisterDialect(kind string, d Dialect) {
	dialectMu.Lock()
	defer dialectMu.Unlock()
	dialects[kind] = d
}

func dialectFor(kind string) (Dialect, error) {
	dialectMu.RLock()
	d, ok := dialects[kind]
	dialectMu.RUnlock()
	if !ok {
		return Dialect{}, fmt.Errorf("storage: no DDL dialect registered for driver %q", kind)
	}
	return d, nil
}

// EnsureTable creates t in the database behind repo if it does not already
// exist. It validates the definition first and never reconciles an existing
// table whose schema differs.
func EnsureTable(ctx context.Context, repo Repository, kind string, t schema.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	d, err := dialectFor(kind)
	if err != nil {
		return err
	}
	stmt, err := d.CreateTable(t)
	if err != nil {
		return fmt.Errorf("storage: render create %s: %w", t.Name, err)
	}
	if err := repo.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("storage: create table %s: %w", t.Name, err)
	}
	return nil
}

// DropTable removes the named table if it exists.
func DropTable(ctx context.Context, repo Repository, kind, table string) error {
	d, err := dialectFor(kind)
	if err != nil {
		return err
	}
	if err := repo.Exec(ctx, d.DropTable(table)); err != nil {
		return fmt.Errorf("storage: drop table %s: %w", table, err)
	}
	return nil
}

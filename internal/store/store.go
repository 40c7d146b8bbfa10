// Package store holds the page cache implementations used by
// fetcher.CachingFetcher: SQLite (default), Postgres and in-memory.
package store

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/epforgpl/senat-cli/internal/fetcher"
)

// DefaultTTL is how long a cached page stays fresh.
const DefaultTTL = time.Hour

// Store is a page cache with lifecycle operations.
type Store interface {
	fetcher.Cache

	// DeleteExpired removes stale entries and returns how many went.
	DeleteExpired(ctx context.Context) (int, error)

	// Clear removes every entry.
	Clear(ctx context.Context) (int, error)

	Migrate(ctx context.Context) error
	Close() error
}

// Options selects and configures a Store.
type Options struct {
	Driver string // sqlite | postgres | memory
	DSN    string
	TTL    time.Duration
	Pool   *PoolConfig
}

// Open creates the store named by opts.Driver and migrates its schema.
func Open(ctx context.Context, opts Options) (Store, error) {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}

	var (
		s   Store
		err error
	)
	switch strings.ToLower(opts.Driver) {
	case "", "sqlite":
		dsn := opts.DSN
		if dsn == "" {
			dsn = "senat-cache.db"
		}
		s, err = NewSQLite(dsn, opts.TTL)
	case "postgres":
		if opts.DSN == "" {
			return nil, eris.New("store: postgres requires a database_url")
		}
		s, err = NewPostgres(ctx, opts.DSN, opts.TTL, opts.Pool)
	case "memory":
		s = NewMemory(opts.TTL)
	default:
		return nil, eris.Errorf("store: unknown driver %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := s.Migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

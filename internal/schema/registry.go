package schema

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Domain describes one logical content table: its name and the column
// definition used to create it. The DDL must be a single
// CREATE TABLE IF NOT EXISTS statement so that concurrent first-time
// callers race safely at the storage layer, not in application code.
type Domain struct {
	Name string
	DDL  string
}

// Execer is the subset of *sqlx.DB the registry needs.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Registry maps domain names to their column definitions and guarantees,
// per process, that a domain's backing table exists before it is queried.
//
// Ensure memoizes success so repeated calls cost nothing after the first;
// the memoization is an optimization only, because the DDL itself is a
// no-op when the table already exists. A failed ensure is not memoized and
// is retried on the next call.
type Registry struct {
	db      Execer
	mu      sync.Mutex
	ensured map[string]bool
	domains map[string]Domain
}

// NewRegistry creates a Registry with all built-in content domains
// registered.
func NewRegistry(db Execer) *Registry {
	r := &Registry{
		db:      db,
		ensured: make(map[string]bool),
		domains: make(map[string]Domain),
	}
	for _, d := range builtinDomains {
		r.Register(d)
	}
	return r
}

// Register adds a domain to the registry. Registering the same name twice
// replaces the earlier definition.
func (r *Registry) Register(d Domain) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.domains[d.Name] = d
}

// Ensure guarantees that the named domain's table exists. Safe to call
// concurrently; the lock also serializes the DDL within this process so a
// cold start issues it once, while correctness never depends on that
// (the statement is idempotent and another process may run it too).
//
// Ensure never alters or drops columns on an existing table.
func (r *Registry) Ensure(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ensured[name] {
		return nil
	}

	d, ok := r.domains[name]
	if !ok {
		return fmt.Errorf("schema: unknown domain %q", name)
	}

	if _, err := r.db.ExecContext(ctx, d.DDL); err != nil {
		log.Error().Err(err).Str("domain", name).Msg("schema ensure failed")
		return fmt.Errorf("schema: ensure %s: %w", name, err)
	}

	r.ensured[name] = true
	log.Debug().Str("domain", name).Msg("schema ensured")
	return nil
}

// EnsureAll ensures every registered domain. Called once at startup so the
// first request never pays the DDL round-trips; individual repositories
// still call Ensure defensively before querying.
func (r *Registry) EnsureAll(ctx context.Context) error {
	r.mu.Lock()
	names := make([]string, 0, len(r.domains))
	for name := range r.domains {
		names = append(names, name)
	}
	r.mu.Unlock()

	for _, name := range names {
		if err := r.Ensure(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

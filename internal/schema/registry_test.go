package schema

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecer records executed statements and can be told to fail.
type fakeExecer struct {
	mu    sync.Mutex
	execs []string
	fail  atomic.Bool
}

func (f *fakeExecer) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	if f.fail.Load() {
		return nil, errors.New("connection refused")
	}
	f.mu.Lock()
	f.execs = append(f.execs, query)
	f.mu.Unlock()
	return nil, nil
}

func (f *fakeExecer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.execs)
}

func TestRegistry_EnsureMemoizes(t *testing.T) {
	db := &fakeExecer{}
	r := NewRegistry(db)

	require.NoError(t, r.Ensure(context.Background(), DomainArticles))
	require.NoError(t, r.Ensure(context.Background(), DomainArticles))
	require.NoError(t, r.Ensure(context.Background(), DomainArticles))

	assert.Equal(t, 1, db.count())
}

func TestRegistry_EnsureConcurrent(t *testing.T) {
	db := &fakeExecer{}
	r := NewRegistry(db)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- r.Ensure(context.Background(), DomainAdminUsers)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, 1, db.count(), "concurrent ensures must execute the DDL once")
}

func TestRegistry_FailureNotMemoized(t *testing.T) {
	db := &fakeExecer{}
	db.fail.Store(true)
	r := NewRegistry(db)

	err := r.Ensure(context.Background(), DomainReports)
	require.Error(t, err)
	assert.Equal(t, 0, db.count())

	// The failed attempt must be retried, not remembered.
	db.fail.Store(false)
	require.NoError(t, r.Ensure(context.Background(), DomainReports))
	assert.Equal(t, 1, db.count())
}

func TestRegistry_UnknownDomain(t *testing.T) {
	r := NewRegistry(&fakeExecer{})

	err := r.Ensure(context.Background(), "no_such_table")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown domain")
}

func TestRegistry_EnsureAll(t *testing.T) {
	db := &fakeExecer{}
	r := NewRegistry(db)

	require.NoError(t, r.EnsureAll(context.Background()))
	assert.Equal(t, len(builtinDomains), db.count())

	// Second pass is fully memoized.
	require.NoError(t, r.EnsureAll(context.Background()))
	assert.Equal(t, len(builtinDomains), db.count())
}

func TestRegistry_RegisterCustomDomain(t *testing.T) {
	db := &fakeExecer{}
	r := NewRegistry(db)
	r.Register(Domain{
		Name: "banners",
		DDL:  "CREATE TABLE IF NOT EXISTS banners (id SERIAL PRIMARY KEY)",
	})

	require.NoError(t, r.Ensure(context.Background(), "banners"))
	assert.Equal(t, 1, db.count())
}

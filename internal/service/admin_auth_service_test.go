package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahanakarya/cms_api/internal/config"
	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/repository"
)

var testSeed = config.SeedConfig{
	AdminEmail:    "admin@wahanakarya.co.id",
	AdminPassword: "admin123",
	AdminName:     "Administrator",
}

// fakeAdminStore is an in-memory AdminUserStore enforcing email uniqueness,
// mirroring the database constraint the bootstrap relies on.
type fakeAdminStore struct {
	mu     sync.Mutex
	nextID int
	users  map[string]*models.AdminUser
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{users: make(map[string]*models.AdminUser)}
}

func (f *fakeAdminStore) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeAdminStore) Count(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users), nil
}

func (f *fakeAdminStore) List(ctx context.Context) ([]models.AdminUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.AdminUser, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeAdminStore) Create(ctx context.Context, user *models.AdminUser) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[user.Email]; exists {
		return fmt.Errorf("%w: admin_users_email_key", repository.ErrDuplicate)
	}
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.users[user.Email] = &cp
	return nil
}

// raceyCount wraps fakeAdminStore so that every caller observes an empty
// store before any insert lands, forcing the bootstrap race.
type raceyCount struct {
	*fakeAdminStore
	gate *sync.WaitGroup
}

func (r *raceyCount) Count(ctx context.Context) (int, error) {
	r.gate.Done()
	r.gate.Wait()
	return 0, nil
}

func TestLogin_SeedsAndAuthenticates(t *testing.T) {
	svc := NewAdminAuthService(newFakeAdminStore(), testSeed)

	user, err := svc.Login(context.Background(), testSeed.AdminEmail, testSeed.AdminPassword)
	require.NoError(t, err)
	assert.Equal(t, testSeed.AdminEmail, user.Email)
	assert.Equal(t, "admin", user.Role)
	assert.True(t, user.IsActive)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewAdminAuthService(newFakeAdminStore(), testSeed)

	_, err := svc.Login(context.Background(), testSeed.AdminEmail, "not-the-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewAdminAuthService(newFakeAdminStore(), testSeed)

	_, err := svc.Login(context.Background(), "nobody@wahanakarya.co.id", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_InactiveAccount(t *testing.T) {
	store := newFakeAdminStore()
	svc := NewAdminAuthService(store, testSeed)
	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))

	store.mu.Lock()
	store.users[testSeed.AdminEmail].IsActive = false
	store.mu.Unlock()

	_, err := svc.Login(context.Background(), testSeed.AdminEmail, testSeed.AdminPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureDefaultAdmin_Idempotent(t *testing.T) {
	store := newFakeAdminStore()
	svc := NewAdminAuthService(store, testSeed)

	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))
	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestEnsureDefaultAdmin_ConcurrentBootstrap(t *testing.T) {
	const callers = 4

	store := newFakeAdminStore()
	gate := &sync.WaitGroup{}
	gate.Add(callers)
	svc := NewAdminAuthService(&raceyCount{fakeAdminStore: store, gate: gate}, testSeed)

	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- svc.EnsureDefaultAdmin(context.Background())
		}()
	}
	wg.Wait()
	close(errs)

	// Every caller succeeds; losers of the insert race treat the duplicate
	// as benign.
	for err := range errs {
		require.NoError(t, err)
	}

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n, "exactly one seeded account must exist")
}

func TestCreateAdmin_DuplicateEmail(t *testing.T) {
	svc := NewAdminAuthService(newFakeAdminStore(), testSeed)

	_, err := svc.CreateAdmin(context.Background(), "editor@wahanakarya.co.id", "secret", "Editor")
	require.NoError(t, err)

	_, err = svc.CreateAdmin(context.Background(), "editor@wahanakarya.co.id", "secret", "Editor")
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestListAdmins_SeedsFirst(t *testing.T) {
	svc := NewAdminAuthService(newFakeAdminStore(), testSeed)

	admins, err := svc.ListAdmins(context.Background())
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, testSeed.AdminEmail, admins[0].Email)
}

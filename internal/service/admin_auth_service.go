package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/wahanakarya/cms_api/internal/config"
	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/repository"
)

// ErrInvalidCredentials covers unknown email, wrong password, and inactive
// accounts alike; callers must not reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminUserStore is the persistence surface AdminAuthService needs.
// *repository.AdminUserRepository satisfies it.
type AdminUserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]models.AdminUser, error)
	Create(ctx context.Context, user *models.AdminUser) error
}

// AdminAuthService verifies admin credentials and manages the one-time
// bootstrap of the default admin account.
type AdminAuthService struct {
	store AdminUserStore
	seed  config.SeedConfig
}

// NewAdminAuthService constructs an AdminAuthService.
func NewAdminAuthService(store AdminUserStore, seed config.SeedConfig) *AdminAuthService {
	return &AdminAuthService{store: store, seed: seed}
}

// Login verifies a password for the admin identified by email. The bootstrap
// runs first so a fresh deployment can log in immediately.
func (s *AdminAuthService) Login(ctx context.Context, email, password string) (*models.AdminUser, error) {
	if err := s.EnsureDefaultAdmin(ctx); err != nil {
		return nil, err
	}

	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		log.Warn().Str("email", email).Msg("login attempt on inactive account")
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	log.Info().Str("email", email).Msg("admin login successful")
	return user, nil
}

// EnsureDefaultAdmin seeds the default admin when the store is empty. Two
// concurrent first requests may both observe an empty store and both insert;
// the uniqueness constraint on email makes the loser's insert fail, which is
// benign — the account exists either way.
func (s *AdminAuthService) EnsureDefaultAdmin(ctx context.Context) error {
	n, err := s.store.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.AdminUser{
		Email:        s.seed.AdminEmail,
		PasswordHash: string(hash),
		Name:         s.seed.AdminName,
		Role:         "admin",
		IsActive:     true,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			log.Debug().Msg("default admin already seeded by a concurrent request")
			return nil
		}
		return err
	}

	log.Info().Str("email", user.Email).Msg("seeded default admin account")
	return nil
}

// CreateAdmin creates an additional admin account. Callers are already
// authenticated; this is not the bootstrap path.
func (s *AdminAuthService) CreateAdmin(ctx context.Context, email, password, name string) (*models.AdminUser, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         "admin",
		IsActive:     true,
	}
	if err := s.store.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListAdmins returns all admin accounts, seeding the default one first so a
// fresh panel never shows an empty list.
func (s *AdminAuthService) ListAdmins(ctx context.Context) ([]models.AdminUser, error) {
	if err := s.EnsureDefaultAdmin(ctx); err != nil {
		return nil, err
	}
	return s.store.List(ctx)
}

package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/schema"
)

// AdminUserRepository provides data access methods for the admin_users table.
type AdminUserRepository struct {
	db     *sqlx.DB
	schema *schema.Registry
}

// NewAdminUserRepository creates a new AdminUserRepository.
func NewAdminUserRepository(db *sqlx.DB, reg *schema.Registry) *AdminUserRepository {
	return &AdminUserRepository{db: db, schema: reg}
}

func (r *AdminUserRepository) ensure(ctx context.Context) error {
	return r.schema.Ensure(ctx, schema.DomainAdminUsers)
}

// GetByEmail finds an admin user by email.
func (r *AdminUserRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	var user models.AdminUser
	err := r.db.GetContext(ctx, &user, `
		SELECT id, email, password_hash, name, role, is_active, created_at, updated_at
		FROM admin_users
		WHERE email = $1
	`, email)
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GetByID finds an admin user by id.
func (r *AdminUserRepository) GetByID(ctx context.Context, id int) (*models.AdminUser, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	var user models.AdminUser
	err := r.db.GetContext(ctx, &user, `
		SELECT id, email, password_hash, name, role, is_active, created_at, updated_at
		FROM admin_users
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Count returns the number of admin users.
func (r *AdminUserRepository) Count(ctx context.Context) (int, error) {
	if err := r.ensure(ctx); err != nil {
		return 0, err
	}
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM admin_users`); err != nil {
		return 0, translate(err)
	}
	return n, nil
}

// List returns all admin users ordered by creation time.
func (r *AdminUserRepository) List(ctx context.Context) ([]models.AdminUser, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	users := []models.AdminUser{}
	err := r.db.SelectContext(ctx, &users, `
		SELECT id, email, password_hash, name, role, is_active, created_at, updated_at
		FROM admin_users
		ORDER BY created_at
	`)
	if err != nil {
		return nil, translate(err)
	}
	return users, nil
}

// Create inserts a new admin user. A duplicate email yields ErrDuplicate.
func (r *AdminUserRepository) Create(ctx context.Context, user *models.AdminUser) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO admin_users (email, password_hash, name, role, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, user.Email, user.PasswordHash, user.Name, user.Role, user.IsActive).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	return translate(err)
}

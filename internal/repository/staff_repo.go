package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/schema"
)

const staffColumns = `id, full_name, position, division, photo_url, bio,
	sort_order, is_active, created_at, updated_at`

// StaffRepository provides data access methods for the staff_profiles table.
type StaffRepository struct {
	db     *sqlx.DB
	schema *schema.Registry
}

// NewStaffRepository creates a new StaffRepository.
func NewStaffRepository(db *sqlx.DB, reg *schema.Registry) *StaffRepository {
	return &StaffRepository{db: db, schema: reg}
}

func (r *StaffRepository) ensure(ctx context.Context) error {
	return r.schema.Ensure(ctx, schema.DomainStaffProfiles)
}

// List returns all staff profiles in display order.
func (r *StaffRepository) List(ctx context.Context) ([]models.StaffProfile, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	items := []models.StaffProfile{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+staffColumns+` FROM staff_profiles ORDER BY sort_order, id`)
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// ListActive returns active staff profiles in display order.
func (r *StaffRepository) ListActive(ctx context.Context) ([]models.StaffProfile, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	items := []models.StaffProfile{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+staffColumns+` FROM staff_profiles
		 WHERE is_active = TRUE ORDER BY sort_order, id`)
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// GetByID finds a staff profile by id.
func (r *StaffRepository) GetByID(ctx context.Context, id int) (*models.StaffProfile, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	var s models.StaffProfile
	err := r.db.GetContext(ctx, &s,
		`SELECT `+staffColumns+` FROM staff_profiles WHERE id = $1`, id)
	if err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

// Create inserts a new staff profile.
func (r *StaffRepository) Create(ctx context.Context, s *models.StaffProfile) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO staff_profiles (full_name, position, division, photo_url, bio, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, s.FullName, s.Position, s.Division, s.PhotoURL, s.Bio, s.SortOrder, s.IsActive).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return translate(err)
}

// Update rewrites an existing staff profile.
func (r *StaffRepository) Update(ctx context.Context, s *models.StaffProfile) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE staff_profiles
		SET full_name = $1, position = $2, division = $3, photo_url = $4,
		    bio = $5, sort_order = $6, is_active = $7, updated_at = NOW()
		WHERE id = $8
	`, s.FullName, s.Position, s.Division, s.PhotoURL, s.Bio, s.SortOrder, s.IsActive, s.ID)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a staff profile by id.
func (r *StaffRepository) Delete(ctx context.Context, id int) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM staff_profiles WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

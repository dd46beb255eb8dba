package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/schema"
)

const jobColumns = `id, title, department, location, description, apply_url,
	closes_on, is_published, created_at, updated_at`

// JobPostingRepository provides data access methods for the job_postings table.
type JobPostingRepository struct {
	db     *sqlx.DB
	schema *schema.Registry
}

// NewJobPostingRepository creates a new JobPostingRepository.
func NewJobPostingRepository(db *sqlx.DB, reg *schema.Registry) *JobPostingRepository {
	return &JobPostingRepository{db: db, schema: reg}
}

func (r *JobPostingRepository) ensure(ctx context.Context) error {
	return r.schema.Ensure(ctx, schema.DomainJobPostings)
}

// List returns all job postings, newest first.
func (r *JobPostingRepository) List(ctx context.Context) ([]models.JobPosting, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	items := []models.JobPosting{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+jobColumns+` FROM job_postings ORDER BY created_at DESC`)
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// ListPublished returns published postings whose deadline has not passed.
func (r *JobPostingRepository) ListPublished(ctx context.Context) ([]models.JobPosting, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	items := []models.JobPosting{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+jobColumns+` FROM job_postings
		 WHERE is_published = TRUE AND (closes_on IS NULL OR closes_on >= CURRENT_DATE)
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// GetByID finds a job posting by id.
func (r *JobPostingRepository) GetByID(ctx context.Context, id int) (*models.JobPosting, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	var j models.JobPosting
	err := r.db.GetContext(ctx, &j,
		`SELECT `+jobColumns+` FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return nil, translate(err)
	}
	return &j, nil
}

// Create inserts a new job posting.
func (r *JobPostingRepository) Create(ctx context.Context, j *models.JobPosting) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO job_postings (title, department, location, description, apply_url, closes_on, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, j.Title, j.Department, j.Location, j.Description, j.ApplyURL, j.ClosesOn, j.IsPublished).
		Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt)
	return translate(err)
}

// Update rewrites an existing job posting.
func (r *JobPostingRepository) Update(ctx context.Context, j *models.JobPosting) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE job_postings
		SET title = $1, department = $2, location = $3, description = $4,
		    apply_url = $5, closes_on = $6, is_published = $7, updated_at = NOW()
		WHERE id = $8
	`, j.Title, j.Department, j.Location, j.Description, j.ApplyURL, j.ClosesOn, j.IsPublished, j.ID)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a job posting by id.
func (r *JobPostingRepository) Delete(ctx context.Context, id int) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

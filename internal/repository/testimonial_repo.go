package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/schema"
)

const testimonialColumns = `id, author_name, organization, quote, photo_url,
	is_published, sort_order, created_at, updated_at`

// TestimonialRepository provides data access methods for the testimonials table.
type TestimonialRepository struct {
	db     *sqlx.DB
	schema *schema.Registry
}

// NewTestimonialRepository creates a new TestimonialRepository.
func NewTestimonialRepository(db *sqlx.DB, reg *schema.Registry) *TestimonialRepository {
	return &TestimonialRepository{db: db, schema: reg}
}

func (r *TestimonialRepository) ensure(ctx context.Context) error {
	return r.schema.Ensure(ctx, schema.DomainTestimonials)
}

// List returns all testimonials in display order.
func (r *TestimonialRepository) List(ctx context.Context) ([]models.Testimonial, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	items := []models.Testimonial{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+testimonialColumns+` FROM testimonials ORDER BY sort_order, id`)
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// ListPublished returns published testimonials in display order.
func (r *TestimonialRepository) ListPublished(ctx context.Context) ([]models.Testimonial, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	items := []models.Testimonial{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+testimonialColumns+` FROM testimonials
		 WHERE is_published = TRUE ORDER BY sort_order, id`)
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// GetByID finds a testimonial by id.
func (r *TestimonialRepository) GetByID(ctx context.Context, id int) (*models.Testimonial, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	var t models.Testimonial
	err := r.db.GetContext(ctx, &t,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

// Create inserts a new testimonial.
func (r *TestimonialRepository) Create(ctx context.Context, t *models.Testimonial) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO testimonials (author_name, organization, quote, photo_url, is_published, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, t.AuthorName, t.Organization, t.Quote, t.PhotoURL, t.IsPublished, t.SortOrder).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	return translate(err)
}

// Update rewrites an existing testimonial.
func (r *TestimonialRepository) Update(ctx context.Context, t *models.Testimonial) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE testimonials
		SET author_name = $1, organization = $2, quote = $3, photo_url = $4,
		    is_published = $5, sort_order = $6, updated_at = NOW()
		WHERE id = $7
	`, t.AuthorName, t.Organization, t.Quote, t.PhotoURL, t.IsPublished, t.SortOrder, t.ID)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a testimonial by id.
func (r *TestimonialRepository) Delete(ctx context.Context, id int) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/schema"
)

const procurementColumns = `id, title, reference_no, summary, document_url,
	opens_on, closes_on, is_published, created_at, updated_at`

// ProcurementRepository provides data access methods for the
// procurement_notices table.
type ProcurementRepository struct {
	db     *sqlx.DB
	schema *schema.Registry
}

// NewProcurementRepository creates a new ProcurementRepository.
func NewProcurementRepository(db *sqlx.DB, reg *schema.Registry) *ProcurementRepository {
	return &ProcurementRepository{db: db, schema: reg}
}

func (r *ProcurementRepository) ensure(ctx context.Context) error {
	return r.schema.Ensure(ctx, schema.DomainProcurementNotices)
}

// List returns all procurement notices, newest first.
func (r *ProcurementRepository) List(ctx context.Context) ([]models.ProcurementNotice, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	items := []models.ProcurementNotice{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+procurementColumns+` FROM procurement_notices ORDER BY created_at DESC`)
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// ListPublished returns published procurement notices, newest first.
func (r *ProcurementRepository) ListPublished(ctx context.Context) ([]models.ProcurementNotice, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	items := []models.ProcurementNotice{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+procurementColumns+` FROM procurement_notices
		 WHERE is_published = TRUE ORDER BY created_at DESC`)
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// GetByID finds a procurement notice by id.
func (r *ProcurementRepository) GetByID(ctx context.Context, id int) (*models.ProcurementNotice, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	var p models.ProcurementNotice
	err := r.db.GetContext(ctx, &p,
		`SELECT `+procurementColumns+` FROM procurement_notices WHERE id = $1`, id)
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// Create inserts a new procurement notice. A duplicate reference number
// yields ErrDuplicate.
func (r *ProcurementRepository) Create(ctx context.Context, p *models.ProcurementNotice) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO procurement_notices (title, reference_no, summary, document_url, opens_on, closes_on, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, p.Title, p.ReferenceNo, p.Summary, p.DocumentURL, p.OpensOn, p.ClosesOn, p.IsPublished).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return translate(err)
}

// Update rewrites an existing procurement notice.
func (r *ProcurementRepository) Update(ctx context.Context, p *models.ProcurementNotice) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE procurement_notices
		SET title = $1, reference_no = $2, summary = $3, document_url = $4,
		    opens_on = $5, closes_on = $6, is_published = $7, updated_at = NOW()
		WHERE id = $8
	`, p.Title, p.ReferenceNo, p.Summary, p.DocumentURL, p.OpensOn, p.ClosesOn, p.IsPublished, p.ID)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a procurement notice by id.
func (r *ProcurementRepository) Delete(ctx context.Context, id int) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM procurement_notices WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

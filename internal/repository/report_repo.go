package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/schema"
)

const reportColumns = `id, title, category, year, file_url, is_published,
	created_at, updated_at`

// ReportRepository provides data access methods for the reports table.
type ReportRepository struct {
	db     *sqlx.DB
	schema *schema.Registry
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(db *sqlx.DB, reg *schema.Registry) *ReportRepository {
	return &ReportRepository{db: db, schema: reg}
}

func (r *ReportRepository) ensure(ctx context.Context) error {
	return r.schema.Ensure(ctx, schema.DomainReports)
}

// List returns all reports, newest year first.
func (r *ReportRepository) List(ctx context.Context) ([]models.Report, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	items := []models.Report{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+reportColumns+` FROM reports ORDER BY year DESC, id DESC`)
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// ListPublished returns published reports, newest year first.
func (r *ReportRepository) ListPublished(ctx context.Context) ([]models.Report, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	items := []models.Report{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+reportColumns+` FROM reports
		 WHERE is_published = TRUE ORDER BY year DESC, id DESC`)
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// GetByID finds a report by id.
func (r *ReportRepository) GetByID(ctx context.Context, id int) (*models.Report, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	var rep models.Report
	err := r.db.GetContext(ctx, &rep,
		`SELECT `+reportColumns+` FROM reports WHERE id = $1`, id)
	if err != nil {
		return nil, translate(err)
	}
	return &rep, nil
}

// Create inserts a new report.
func (r *ReportRepository) Create(ctx context.Context, rep *models.Report) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reports (title, category, year, file_url, is_published)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, rep.Title, rep.Category, rep.Year, rep.FileURL, rep.IsPublished).
		Scan(&rep.ID, &rep.CreatedAt, &rep.UpdatedAt)
	return translate(err)
}

// Update rewrites an existing report.
func (r *ReportRepository) Update(ctx context.Context, rep *models.Report) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE reports
		SET title = $1, category = $2, year = $3, file_url = $4,
		    is_published = $5, updated_at = NOW()
		WHERE id = $6
	`, rep.Title, rep.Category, rep.Year, rep.FileURL, rep.IsPublished, rep.ID)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a report by id.
func (r *ReportRepository) Delete(ctx context.Context, id int) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/schema"
)

const mediaColumns = `id, title, kind, file_url, source_name, published_on,
	is_published, created_at, updated_at`

// MediaRepository provides data access methods for the media_items table.
type MediaRepository struct {
	db     *sqlx.DB
	schema *schema.Registry
}

// NewMediaRepository creates a new MediaRepository.
func NewMediaRepository(db *sqlx.DB, reg *schema.Registry) *MediaRepository {
	return &MediaRepository{db: db, schema: reg}
}

func (r *MediaRepository) ensure(ctx context.Context) error {
	return r.schema.Ensure(ctx, schema.DomainMediaItems)
}

// List returns all media items, newest first.
func (r *MediaRepository) List(ctx context.Context) ([]models.MediaItem, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	items := []models.MediaItem{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+mediaColumns+` FROM media_items ORDER BY published_on DESC NULLS LAST, id DESC`)
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// ListPublished returns published media items, newest first.
func (r *MediaRepository) ListPublished(ctx context.Context) ([]models.MediaItem, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	items := []models.MediaItem{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+mediaColumns+` FROM media_items
		 WHERE is_published = TRUE
		 ORDER BY published_on DESC NULLS LAST, id DESC`)
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// GetByID finds a media item by id.
func (r *MediaRepository) GetByID(ctx context.Context, id int) (*models.MediaItem, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	var m models.MediaItem
	err := r.db.GetContext(ctx, &m,
		`SELECT `+mediaColumns+` FROM media_items WHERE id = $1`, id)
	if err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

// Create inserts a new media item.
func (r *MediaRepository) Create(ctx context.Context, m *models.MediaItem) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO media_items (title, kind, file_url, source_name, published_on, is_published)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, m.Title, m.Kind, m.FileURL, m.SourceName, m.PublishedOn, m.IsPublished).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	return translate(err)
}

// Update rewrites an existing media item.
func (r *MediaRepository) Update(ctx context.Context, m *models.MediaItem) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE media_items
		SET title = $1, kind = $2, file_url = $3, source_name = $4,
		    published_on = $5, is_published = $6, updated_at = NOW()
		WHERE id = $7
	`, m.Title, m.Kind, m.FileURL, m.SourceName, m.PublishedOn, m.IsPublished, m.ID)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a media item by id.
func (r *MediaRepository) Delete(ctx context.Context, id int) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM media_items WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/schema"
)

const galleryColumns = `id, title, slug, description, cover_url, is_published,
	created_at, updated_at`

// GalleryRepository provides data access for galleries and their images.
type GalleryRepository struct {
	db     *sqlx.DB
	schema *schema.Registry
}

// NewGalleryRepository creates a new GalleryRepository.
func NewGalleryRepository(db *sqlx.DB, reg *schema.Registry) *GalleryRepository {
	return &GalleryRepository{db: db, schema: reg}
}

// ensure guarantees both gallery tables; images never exist without their
// parent domain.
func (r *GalleryRepository) ensure(ctx context.Context) error {
	if err := r.schema.Ensure(ctx, schema.DomainGalleries); err != nil {
		return err
	}
	return r.schema.Ensure(ctx, schema.DomainGalleryImages)
}

// List returns all galleries, newest first. Images are not loaded.
func (r *GalleryRepository) List(ctx context.Context) ([]models.Gallery, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	items := []models.Gallery{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+galleryColumns+` FROM galleries ORDER BY created_at DESC`)
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// ListPublished returns published galleries, newest first.
func (r *GalleryRepository) ListPublished(ctx context.Context) ([]models.Gallery, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	items := []models.Gallery{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+galleryColumns+` FROM galleries
		 WHERE is_published = TRUE ORDER BY created_at DESC`)
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// GetByID finds a gallery by id, with its images attached.
func (r *GalleryRepository) GetByID(ctx context.Context, id int) (*models.Gallery, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	var g models.Gallery
	err := r.db.GetContext(ctx, &g,
		`SELECT `+galleryColumns+` FROM galleries WHERE id = $1`, id)
	if err != nil {
		return nil, translate(err)
	}
	if g.Images, err = r.listImages(ctx, g.ID); err != nil {
		return nil, err
	}
	return &g, nil
}

// GetPublishedBySlug finds a published gallery by slug, with images.
func (r *GalleryRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.Gallery, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	var g models.Gallery
	err := r.db.GetContext(ctx, &g,
		`SELECT `+galleryColumns+` FROM galleries WHERE slug = $1 AND is_published = TRUE`, slug)
	if err != nil {
		return nil, translate(err)
	}
	if g.Images, err = r.listImages(ctx, g.ID); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GalleryRepository) listImages(ctx context.Context, galleryID int) ([]models.GalleryImage, error) {
	images := []models.GalleryImage{}
	err := r.db.SelectContext(ctx, &images, `
		SELECT id, gallery_id, image_url, caption, sort_order, created_at
		FROM gallery_images
		WHERE gallery_id = $1
		ORDER BY sort_order, id
	`, galleryID)
	if err != nil {
		return nil, translate(err)
	}
	return images, nil
}

// Create inserts a new gallery. A duplicate slug yields ErrDuplicate.
func (r *GalleryRepository) Create(ctx context.Context, g *models.Gallery) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO galleries (title, slug, description, cover_url, is_published)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, g.Title, g.Slug, g.Description, g.CoverURL, g.IsPublished).
		Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	return translate(err)
}

// Update rewrites an existing gallery (images are managed separately).
func (r *GalleryRepository) Update(ctx context.Context, g *models.Gallery) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE galleries
		SET title = $1, slug = $2, description = $3, cover_url = $4,
		    is_published = $5, updated_at = NOW()
		WHERE id = $6
	`, g.Title, g.Slug, g.Description, g.CoverURL, g.IsPublished, g.ID)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a gallery and its images.
func (r *GalleryRepository) Delete(ctx context.Context, id int) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM gallery_images WHERE gallery_id = $1`, id); err != nil {
		return translate(err)
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM galleries WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// AddImage appends an image to a gallery.
func (r *GalleryRepository) AddImage(ctx context.Context, img *models.GalleryImage) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	// Parent must exist; a dangling image row helps nobody.
	var exists bool
	if err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM galleries WHERE id = $1)`, img.GalleryID); err != nil {
		return translate(err)
	}
	if !exists {
		return ErrNotFound
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO gallery_images (gallery_id, image_url, caption, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, img.GalleryID, img.ImageURL, img.Caption, img.SortOrder).
		Scan(&img.ID, &img.CreatedAt)
	return translate(err)
}

// DeleteImage removes one image from a gallery.
func (r *GalleryRepository) DeleteImage(ctx context.Context, galleryID, imageID int) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM gallery_images WHERE id = $1 AND gallery_id = $2`, imageID, galleryID)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

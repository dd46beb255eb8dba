package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/schema"
)

const articleColumns = `id, title, slug, excerpt, body, cover_url, author_id,
	is_published, published_at, created_at, updated_at`

// ArticleRepository provides data access methods for the articles table.
type ArticleRepository struct {
	db     *sqlx.DB
	schema *schema.Registry
}

// NewArticleRepository creates a new ArticleRepository.
func NewArticleRepository(db *sqlx.DB, reg *schema.Registry) *ArticleRepository {
	return &ArticleRepository{db: db, schema: reg}
}

func (r *ArticleRepository) ensure(ctx context.Context) error {
	return r.schema.Ensure(ctx, schema.DomainArticles)
}

// List returns all articles, newest first.
func (r *ArticleRepository) List(ctx context.Context) ([]models.Article, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	items := []models.Article{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+articleColumns+` FROM articles ORDER BY created_at DESC`)
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// ListPublished returns published articles, newest first.
func (r *ArticleRepository) ListPublished(ctx context.Context) ([]models.Article, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	items := []models.Article{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+articleColumns+` FROM articles
		 WHERE is_published = TRUE
		 ORDER BY published_at DESC NULLS LAST`)
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// GetByID finds an article by id.
func (r *ArticleRepository) GetByID(ctx context.Context, id int) (*models.Article, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	var a models.Article
	err := r.db.GetContext(ctx, &a,
		`SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

// GetPublishedBySlug finds a published article by slug.
func (r *ArticleRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	var a models.Article
	err := r.db.GetContext(ctx, &a,
		`SELECT `+articleColumns+` FROM articles WHERE slug = $1 AND is_published = TRUE`, slug)
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

// Create inserts a new article. published_at is stamped when the article is
// created already published.
func (r *ArticleRepository) Create(ctx context.Context, a *models.Article) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	if a.IsPublished && a.PublishedAt == nil {
		now := time.Now()
		a.PublishedAt = &now
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO articles (title, slug, excerpt, body, cover_url, author_id, is_published, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, a.Title, a.Slug, a.Excerpt, a.Body, a.CoverURL, a.AuthorID, a.IsPublished, a.PublishedAt).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return translate(err)
}

// Update rewrites an existing article. published_at is stamped on the
// transition to published and kept on later edits.
func (r *ArticleRepository) Update(ctx context.Context, a *models.Article) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	if a.IsPublished && a.PublishedAt == nil {
		now := time.Now()
		a.PublishedAt = &now
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE articles
		SET title = $1, slug = $2, excerpt = $3, body = $4, cover_url = $5,
		    is_published = $6, published_at = $7, updated_at = NOW()
		WHERE id = $8
	`, a.Title, a.Slug, a.Excerpt, a.Body, a.CoverURL, a.IsPublished, a.PublishedAt, a.ID)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an article by id.
func (r *ArticleRepository) Delete(ctx context.Context, id int) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

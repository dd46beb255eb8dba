package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/schema"
)

// SubscriberRepository provides data access methods for the subscribers table.
type SubscriberRepository struct {
	db     *sqlx.DB
	schema *schema.Registry
}

// NewSubscriberRepository creates a new SubscriberRepository.
func NewSubscriberRepository(db *sqlx.DB, reg *schema.Registry) *SubscriberRepository {
	return &SubscriberRepository{db: db, schema: reg}
}

func (r *SubscriberRepository) ensure(ctx context.Context) error {
	return r.schema.Ensure(ctx, schema.DomainSubscribers)
}

// List returns all subscribers, newest first.
func (r *SubscriberRepository) List(ctx context.Context) ([]models.Subscriber, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	items := []models.Subscriber{}
	err := r.db.SelectContext(ctx, &items, `
		SELECT id, email, is_active, created_at
		FROM subscribers
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// Create inserts a new subscriber. A duplicate email yields ErrDuplicate.
func (r *SubscriberRepository) Create(ctx context.Context, s *models.Subscriber) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO subscribers (email, is_active)
		VALUES ($1, TRUE)
		RETURNING id, is_active, created_at
	`, s.Email).Scan(&s.ID, &s.IsActive, &s.CreatedAt)
	return translate(err)
}

// Delete removes a subscriber by id.
func (r *SubscriberRepository) Delete(ctx context.Context, id int) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM subscribers WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

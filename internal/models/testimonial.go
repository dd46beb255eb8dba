package models

import "time"

// Testimonial is a quote displayed on the public site.
type Testimonial struct {
	ID           int       `db:"id" json:"id"`
	AuthorName   string    `db:"author_name" json:"authorName"`
	Organization string    `db:"organization" json:"organization"`
	Quote        string    `db:"quote" json:"quote"`
	PhotoURL     string    `db:"photo_url" json:"photoUrl"`
	IsPublished  bool      `db:"is_published" json:"isPublished"`
	SortOrder    int       `db:"sort_order" json:"sortOrder"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

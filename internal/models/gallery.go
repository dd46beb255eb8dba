package models

import "time"

// Gallery is a named collection of images.
type Gallery struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Slug        string    `db:"slug" json:"slug"`
	Description string    `db:"description" json:"description"`
	CoverURL    string    `db:"cover_url" json:"coverUrl"`
	IsPublished bool      `db:"is_published" json:"isPublished"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`

	// Populated on detail reads only.
	Images []GalleryImage `db:"-" json:"images,omitempty"`
}

// GalleryImage is one image inside a gallery.
type GalleryImage struct {
	ID        int       `db:"id" json:"id"`
	GalleryID int       `db:"gallery_id" json:"galleryId"`
	ImageURL  string    `db:"image_url" json:"imageUrl"`
	Caption   string    `db:"caption" json:"caption"`
	SortOrder int       `db:"sort_order" json:"sortOrder"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

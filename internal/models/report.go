package models

import "time"

// Report is a published document (annual report, financial statement, etc).
type Report struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Category    string    `db:"category" json:"category"`
	Year        int       `db:"year" json:"year"`
	FileURL     string    `db:"file_url" json:"fileUrl"`
	IsPublished bool      `db:"is_published" json:"isPublished"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

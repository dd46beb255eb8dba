package models

import "time"

// JobPosting is a vacancy listed on the careers page.
type JobPosting struct {
	ID          int        `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Department  string     `db:"department" json:"department"`
	Location    string     `db:"location" json:"location"`
	Description string     `db:"description" json:"description"`
	ApplyURL    string     `db:"apply_url" json:"applyUrl"`
	ClosesOn    *time.Time `db:"closes_on" json:"closesOn,omitempty"`
	IsPublished bool       `db:"is_published" json:"isPublished"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}

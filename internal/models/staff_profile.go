package models

import "time"

// StaffProfile is a person shown on the organization page.
type StaffProfile struct {
	ID        int       `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"fullName"`
	Position  string    `db:"position" json:"position"`
	Division  string    `db:"division" json:"division"`
	PhotoURL  string    `db:"photo_url" json:"photoUrl"`
	Bio       string    `db:"bio" json:"bio"`
	SortOrder int       `db:"sort_order" json:"sortOrder"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

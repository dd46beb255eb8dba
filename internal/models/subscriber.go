package models

import "time"

// Subscriber is a mailing-list entry collected from the public site.
type Subscriber struct {
	ID        int       `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

package models

import "time"

// ProcurementNotice is a tender announcement with its bidding window.
type ProcurementNotice struct {
	ID          int        `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	ReferenceNo string     `db:"reference_no" json:"referenceNo"`
	Summary     string     `db:"summary" json:"summary"`
	DocumentURL string     `db:"document_url" json:"documentUrl"`
	OpensOn     *time.Time `db:"opens_on" json:"opensOn,omitempty"`
	ClosesOn    *time.Time `db:"closes_on" json:"closesOn,omitempty"`
	IsPublished bool       `db:"is_published" json:"isPublished"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}

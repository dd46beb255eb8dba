package models

import "time"

// Media item kinds.
const (
	MediaKindPress = "press"
	MediaKindClip  = "clip"
	MediaKindDoc   = "doc"
)

// MediaItem is a press mention, video clip, or downloadable document.
type MediaItem struct {
	ID          int        `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Kind        string     `db:"kind" json:"kind"`
	FileURL     string     `db:"file_url" json:"fileUrl"`
	SourceName  string     `db:"source_name" json:"sourceName"`
	PublishedOn *time.Time `db:"published_on" json:"publishedOn,omitempty"`
	IsPublished bool       `db:"is_published" json:"isPublished"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}

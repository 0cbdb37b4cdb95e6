package domain

import (
	"errors"
	"time"
)

// ContentType enumerates the catalog categories.
type ContentType string

const (
	TypeAnime ContentType = "anime"
	TypeMusic ContentType = "music"
	TypeMovie ContentType = "movie"
	TypeManga ContentType = "manga"
	TypeTV    ContentType = "tv"
)

var ErrContentNotFound = errors.New("content not found")

// ValidContentType reports whether raw names a known catalog category.
func ValidContentType(raw string) bool {
	switch ContentType(raw) {
	case TypeAnime, TypeMusic, TypeMovie, TypeManga, TypeTV:
		return true
	}
	return false
}

// Content is a catalog entry. Metadata carries type-specific fields
// (episode counts, track lists, runtime) without a fixed schema.
type Content struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Type        ContentType    `json:"type"`
	ImageURL    string         `json:"image_url,omitempty"`
	SourceURL   string         `json:"source_url,omitempty"`
	RequiresVip bool           `json:"requires_vip"`
	Tags        []string       `json:"tags,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Favorite links a user to a bookmarked catalog entry.
type Favorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ContentID string    `json:"content_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Download records that a user fetched a catalog entry. Record-only: the
// actual media transfer happens outside this system.
type Download struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ContentID string    `json:"content_id"`
	CreatedAt time.Time `json:"created_at"`
}

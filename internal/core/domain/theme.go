package domain

import (
	"errors"
	"time"
)

var ErrThemeNotFound = errors.New("no active theme found")

// ThemeSettings is the site-wide color scheme picked by an admin. Exactly one
// row is active at a time; updating replaces the active row.
type ThemeSettings struct {
	ID              int64     `json:"id"`
	PrimaryColor    string    `json:"primary_color"`
	SecondaryColor  string    `json:"secondary_color"`
	AccentColor     string    `json:"accent_color"`
	BackgroundColor string    `json:"background_color"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

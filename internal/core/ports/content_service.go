package ports

import (
	"context"

	"github.com/monsterwith/monstermedia/internal/core/domain"
)

// ContentService serves catalog reads and per-user catalog interactions.
type ContentService interface {
	Featured(ctx context.Context) (*domain.Content, error)
	// ByID returns the entry; viewer may be nil (anonymous). VIP-only entries
	// are forbidden to viewers without the VIP flag.
	ByID(ctx context.Context, id string, viewer *domain.User) (*domain.Content, error)
	ByType(ctx context.Context, contentType string, limit int) ([]domain.Content, error)
	ListVip(ctx context.Context, limit int) ([]domain.Content, error)
	Search(ctx context.Context, query, contentType string) ([]domain.Content, error)

	AddFavorite(ctx context.Context, userID int64, contentID string) (*domain.Favorite, error)
	RemoveFavorite(ctx context.Context, userID int64, contentID string) error
	ListFavorites(ctx context.Context, userID int64) ([]domain.Content, error)

	RecordDownload(ctx context.Context, userID int64, contentID string) (*domain.Download, error)
	ListDownloads(ctx context.Context, userID int64) ([]domain.Content, error)
}

// UserService covers the admin-facing user directory operations.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, patch UserPatch) (*domain.User, error)
}

// ThemeService serves the site theme.
type ThemeService interface {
	Active(ctx context.Context) (*domain.ThemeSettings, error)
	Replace(ctx context.Context, t *domain.ThemeSettings) (*domain.ThemeSettings, error)
}

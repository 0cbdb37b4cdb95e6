package ports

import (
	"context"

	"github.com/monsterwith/monstermedia/internal/core/domain"
)

// ContentRepository defines read/write access to the media catalog.
type ContentRepository interface {
	Create(ctx context.Context, c *domain.Content) (*domain.Content, error)
	FindByID(ctx context.Context, id string) (*domain.Content, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Content, error)
	ListByType(ctx context.Context, contentType domain.ContentType, limit int) ([]domain.Content, error)
	ListVip(ctx context.Context, limit int) ([]domain.Content, error)
	Featured(ctx context.Context) (*domain.Content, error)
	Search(ctx context.Context, query string, contentType *domain.ContentType) ([]domain.Content, error)
}

// InteractionRepository persists per-user favorites and download history.
type InteractionRepository interface {
	// AddFavorite is idempotent: favoriting the same content twice returns
	// the existing row.
	AddFavorite(ctx context.Context, userID int64, contentID string) (*domain.Favorite, error)
	RemoveFavorite(ctx context.Context, userID int64, contentID string) error
	FavoriteContentIDs(ctx context.Context, userID int64) ([]string, error)

	RecordDownload(ctx context.Context, userID int64, contentID string) (*domain.Download, error)
	DownloadContentIDs(ctx context.Context, userID int64) ([]string, error)
}

// ThemeRepository persists the site theme. ActiveTheme returns
// domain.ErrThemeNotFound when no theme row is active.
type ThemeRepository interface {
	ActiveTheme(ctx context.Context) (*domain.ThemeSettings, error)
	ReplaceTheme(ctx context.Context, t *domain.ThemeSettings) (*domain.ThemeSettings, error)
}

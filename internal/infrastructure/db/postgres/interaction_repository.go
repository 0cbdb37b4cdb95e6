package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/monsterwith/monstermedia/internal/core/domain"
)

type InteractionRepository struct {
	db DBTX
}

func NewInteractionRepository(db DBTX) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// AddFavorite inserts a favorite, or returns the existing row when the user
// has already favorited the content.
func (r *InteractionRepository) AddFavorite(ctx context.Context, userID int64, contentID string) (*domain.Favorite, error) {
	query := `INSERT INTO favorites (user_id, content_id)
	          VALUES ($1, $2)
	          ON CONFLICT (user_id, content_id) DO NOTHING
	          RETURNING id, user_id, content_id, created_at`

	var f domain.Favorite
	err := r.db.QueryRowContext(ctx, query, userID, contentID).
		Scan(&f.ID, &f.UserID, &f.ContentID, &f.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// Conflict path: the favorite already exists.
		query = `SELECT id, user_id, content_id, created_at FROM favorites
		         WHERE user_id = $1 AND content_id = $2`
		err = r.db.QueryRowContext(ctx, query, userID, contentID).
			Scan(&f.ID, &f.UserID, &f.ContentID, &f.CreatedAt)
	}
	if err != nil {
		return nil, fmt.Errorf("add favorite: %w", err)
	}
	return &f, nil
}

func (r *InteractionRepository) RemoveFavorite(ctx context.Context, userID int64, contentID string) error {
	query := "DELETE FROM favorites WHERE user_id = $1 AND content_id = $2"
	if _, err := r.db.ExecContext(ctx, query, userID, contentID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

// FavoriteContentIDs returns the user's favorited content ids, newest first.
func (r *InteractionRepository) FavoriteContentIDs(ctx context.Context, userID int64) ([]string, error) {
	query := `SELECT content_id FROM favorites
	          WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	return r.contentIDs(ctx, query, userID, "favorites")
}

// RecordDownload appends a download event. Repeat downloads of the same
// content each get their own row.
func (r *InteractionRepository) RecordDownload(ctx context.Context, userID int64, contentID string) (*domain.Download, error) {
	query := `INSERT INTO downloads (user_id, content_id)
	          VALUES ($1, $2)
	          RETURNING id, user_id, content_id, created_at`

	var d domain.Download
	err := r.db.QueryRowContext(ctx, query, userID, contentID).
		Scan(&d.ID, &d.UserID, &d.ContentID, &d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("record download: %w", err)
	}
	return &d, nil
}

// DownloadContentIDs returns the distinct content ids the user has
// downloaded, most recent first.
func (r *InteractionRepository) DownloadContentIDs(ctx context.Context, userID int64) ([]string, error) {
	query := `SELECT content_id FROM downloads
	          WHERE user_id = $1
	          GROUP BY content_id ORDER BY MAX(created_at) DESC`
	return r.contentIDs(ctx, query, userID, "downloads")
}

func (r *InteractionRepository) contentIDs(ctx context.Context, query string, userID int64, what string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", what, err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list %s: %w", what, err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", what, err)
	}
	return out, nil
}

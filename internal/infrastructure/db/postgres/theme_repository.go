package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/monsterwith/monstermedia/internal/core/domain"
)

const themeColumns = "id, primary_color, secondary_color, accent_color, background_color, is_active, created_at"

type ThemeRepository struct {
	db *sql.DB
}

func NewThemeRepository(db *sql.DB) *ThemeRepository {
	return &ThemeRepository{db: db}
}

// ActiveTheme returns the currently active theme row.
func (r *ThemeRepository) ActiveTheme(ctx context.Context) (*domain.ThemeSettings, error) {
	query := "SELECT " + themeColumns + ` FROM theme_settings
	          WHERE is_active ORDER BY id DESC LIMIT 1`

	var t domain.ThemeSettings
	err := r.db.QueryRowContext(ctx, query).Scan(
		&t.ID, &t.PrimaryColor, &t.SecondaryColor, &t.AccentColor,
		&t.BackgroundColor, &t.IsActive, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrThemeNotFound
		}
		return nil, fmt.Errorf("active theme: %w", err)
	}
	return &t, nil
}

// ReplaceTheme deactivates any active theme and inserts t as the new active
// row, atomically.
func (r *ThemeRepository) ReplaceTheme(ctx context.Context, t *domain.ThemeSettings) (*domain.ThemeSettings, error) {
	var out *domain.ThemeSettings

	err := WithTx(ctx, r.db, nil, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, "UPDATE theme_settings SET is_active = FALSE WHERE is_active"); err != nil {
			return fmt.Errorf("deactivate theme: %w", err)
		}

		query := `INSERT INTO theme_settings
		          (primary_color, secondary_color, accent_color, background_color, is_active)
		          VALUES ($1, $2, $3, $4, TRUE)
		          RETURNING ` + themeColumns

		var saved domain.ThemeSettings
		err := tx.QueryRowContext(ctx, query,
			t.PrimaryColor, t.SecondaryColor, t.AccentColor, t.BackgroundColor).Scan(
			&saved.ID, &saved.PrimaryColor, &saved.SecondaryColor, &saved.AccentColor,
			&saved.BackgroundColor, &saved.IsActive, &saved.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert theme: %w", err)
		}
		out = &saved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

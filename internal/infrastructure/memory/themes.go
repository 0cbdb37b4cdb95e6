package memory

import (
	"context"
	"time"

	"github.com/monsterwith/monstermedia/internal/core/domain"
)

type ThemeRepository struct {
	s *Store
}

func (r *ThemeRepository) ActiveTheme(_ context.Context) (*domain.ThemeSettings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, t := range r.s.themes {
		if t.IsActive {
			t := t
			return &t, nil
		}
	}
	return nil, domain.ErrThemeNotFound
}

func (r *ThemeRepository) ReplaceTheme(_ context.Context, t *domain.ThemeSettings) (*domain.ThemeSettings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, existing := range r.s.themes {
		existing.IsActive = false
		r.s.themes[id] = existing
	}

	r.s.nextThemeID++
	created := *t
	created.ID = r.s.nextThemeID
	created.IsActive = true
	created.CreatedAt = time.Now().UTC()
	r.s.themes[created.ID] = created
	return &created, nil
}

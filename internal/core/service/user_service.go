package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/monsterwith/monstermedia/internal/core/domain"
	"github.com/monsterwith/monstermedia/internal/core/ports"
)

// UserService covers the admin-facing user directory operations. VIP grants
// inside a patch are routed through the entitlement service so every path
// that turns the flag on goes through the same audited grant.
type UserService struct {
	users        ports.UserRepository
	entitlements ports.EntitlementService
	log          zerolog.Logger
}

func NewUserService(users ports.UserRepository, entitlements ports.EntitlementService, log zerolog.Logger) *UserService {
	return &UserService{users: users, entitlements: entitlements, log: log}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Update(ctx context.Context, id int64, patch ports.UserPatch) (*domain.User, error) {
	if patch.IsVip != nil && *patch.IsVip {
		if _, err := s.entitlements.GrantVip(ctx, id); err != nil {
			return nil, err
		}
		patch.IsVip = nil
	}

	user, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("user_id", id).Msg("user updated")
	return user, nil
}

// ThemeService serves the site-wide theme settings.
type ThemeService struct {
	themes ports.ThemeRepository
}

func NewThemeService(themes ports.ThemeRepository) *ThemeService {
	return &ThemeService{themes: themes}
}

func (s *ThemeService) Active(ctx context.Context) (*domain.ThemeSettings, error) {
	return s.themes.ActiveTheme(ctx)
}

func (s *ThemeService) Replace(ctx context.Context, t *domain.ThemeSettings) (*domain.ThemeSettings, error) {
	return s.themes.ReplaceTheme(ctx, t)
}

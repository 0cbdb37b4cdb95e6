package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/monsterwith/monstermedia/internal/core/domain"
	"github.com/monsterwith/monstermedia/internal/core/ports"
)

// EntitlementService grants VIP access outside the atomic decide flow, for
// example when an admin flips the flag directly. Kept separate from the
// ledger so the grant is small and auditable.
type EntitlementService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewEntitlementService(users ports.UserRepository, log zerolog.Logger) *EntitlementService {
	return &EntitlementService{users: users, log: log}
}

// GrantVip sets the VIP flag on the user. Granting an existing VIP is a no-op
// that still returns the current record. A dangling user id is an integrity
// fault in the ledger; it surfaces as domain.ErrUserNotFound rather than
// being trusted.
func (s *EntitlementService) GrantVip(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GrantVip(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("user_id", user.ID).Msg("vip access granted")
	return user, nil
}

package ports

import (
	"context"

	"github.com/monsterwith/monstermedia/internal/core/domain"
)

// UserPatch enumerates the fields an admin update may change. Nil fields are
// left untouched, so the set of updatable attributes is fixed at compile time.
type UserPatch struct {
	Username *string
	Email    *string
	IsVip    *bool
	IsAdmin  *bool
}

// UserRepository defines persistence for the user directory.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, patch UserPatch) (*domain.User, error)

	// GrantVip sets the user's VIP flag. Idempotent: granting an existing VIP
	// succeeds and returns the current record.
	GrantVip(ctx context.Context, id int64) (*domain.User, error)
}

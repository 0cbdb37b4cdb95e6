package ports

import (
	"context"

	"github.com/monsterwith/monstermedia/internal/core/domain"
)

type AuthService interface {
	// Register creates an account and opens a session for it.
	Register(ctx context.Context, username, email, password string) (string, *domain.User, error)
	// Login verifies credentials and opens a session.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout destroys the session behind token.
	Logout(ctx context.Context, token string) error
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}

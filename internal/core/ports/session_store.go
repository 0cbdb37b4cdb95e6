package ports

import "context"

// SessionStore maps opaque server-issued tokens to user ids. Tokens carry no
// claims: role flags are always re-read from the user directory, so a flag
// change takes effect on the next request.
type SessionStore interface {
	// Create issues a new token for the user.
	Create(ctx context.Context, userID int64) (string, error)
	// Resolve returns the user id the token maps to, or
	// domain.ErrSessionNotFound for an unknown or expired token.
	Resolve(ctx context.Context, token string) (int64, error)
	// Destroy invalidates the token. Destroying an unknown token is a no-op.
	Destroy(ctx context.Context, token string) error
}

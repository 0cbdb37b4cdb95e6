package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/monsterwith/monstermedia/internal/core/domain"
	"github.com/monsterwith/monstermedia/internal/core/ports"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "mm_session"

// Context keys populated by Session and OptionalSession.
const (
	CtxUser    = "user"
	CtxUserID  = "user_id"
	CtxIsAdmin = "is_admin"
	CtxIsVip   = "is_vip"
	CtxToken   = "session_token"
)

// Session resolves the caller's opaque session token to a user and injects
// the identity into the request context. The user record is loaded fresh on
// every request, so entitlement changes apply on the very next call. A
// missing, unknown, or dangling token yields ErrUnauthenticated; a partial
// identity is never injected.
func Session(sessions ports.SessionStore, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return domain.ErrUnauthenticated
			}

			userID, err := sessions.Resolve(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) {
					return domain.ErrUnauthenticated
				}
				return err
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				// A session pointing at a deleted user is not an identity.
				if errors.Is(err, domain.ErrUserNotFound) {
					return domain.ErrUnauthenticated
				}
				return err
			}

			inject(c, token, user)
			return next(c)
		}
	}
}

// OptionalSession injects the identity when a valid session is present and
// proceeds anonymously otherwise.
func OptionalSession(sessions ports.SessionStore, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return next(c)
			}

			userID, err := sessions.Resolve(c.Request().Context(), token)
			if err != nil {
				return next(c)
			}
			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return next(c)
			}

			inject(c, token, user)
			return next(c)
		}
	}
}

func inject(c echo.Context, token string, user *domain.User) {
	c.Set(CtxUser, user)
	c.Set(CtxUserID, user.ID)
	c.Set(CtxIsAdmin, user.IsAdmin)
	c.Set(CtxIsVip, user.IsVip)
	c.Set(CtxToken, token)
}

// extractToken prefers the Authorization header, falling back to the session
// cookie set for browser clients.
func extractToken(c echo.Context) string {
	if header := c.Request().Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/monsterwith/monstermedia/internal/core/domain"
)

// RequireAdmin forbids callers without the admin flag. Runs after Session.
func RequireAdmin() echo.MiddlewareFunc {
	return requireFlag(CtxIsAdmin)
}

// RequireVip forbids callers without the VIP flag. Runs after Session.
func RequireVip() echo.MiddlewareFunc {
	return requireFlag(CtxIsVip)
}

func requireFlag(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, _ := c.Get(key).(bool)
			if !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

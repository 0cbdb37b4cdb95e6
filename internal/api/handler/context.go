package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/monsterwith/monstermedia/internal/api/middleware"
	"github.com/monsterwith/monstermedia/internal/core/domain"
)

// currentUser returns the identity injected by the session middleware, or nil
// for anonymous requests (routes behind OptionalSession).
func currentUser(c echo.Context) *domain.User {
	user, _ := c.Get(middleware.CtxUser).(*domain.User)
	return user
}

// requireCurrentUser is for routes behind the mandatory session middleware:
// the identity must be present, and its absence means the route is miswired.
func requireCurrentUser(c echo.Context) (*domain.User, error) {
	user := currentUser(c)
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}

func sessionToken(c echo.Context) string {
	token, _ := c.Get(middleware.CtxToken).(string)
	return token
}

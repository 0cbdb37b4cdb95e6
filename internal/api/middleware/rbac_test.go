package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/monsterwith/monstermedia/internal/core/domain"
)

func flagContext(t *testing.T, key string, value bool) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set(key, value)
	return c
}

func TestRequireAdmin_Allows(t *testing.T) {
	c := flagContext(t, CtxIsAdmin, true)

	called := false
	handler := RequireAdmin()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequireAdmin_Forbids(t *testing.T) {
	next := func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	}

	c := flagContext(t, CtxIsAdmin, false)
	if err := RequireAdmin()(next)(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	// No session middleware ran at all: flag absent.
	e := echo.New()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if err := RequireAdmin()(next)(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden without flag, got %v", err)
	}
}

func TestRequireVip(t *testing.T) {
	c := flagContext(t, CtxIsVip, true)
	if err := RequireVip()(func(c echo.Context) error { return nil })(c); err != nil {
		t.Fatalf("vip caller rejected: %v", err)
	}

	c = flagContext(t, CtxIsVip, false)
	err := RequireVip()(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/monsterwith/monstermedia/internal/core/domain"
	"github.com/monsterwith/monstermedia/internal/infrastructure/memory"
)

func newSessionFixture(t *testing.T) (*memory.Store, *domain.User, string) {
	t.Helper()
	store := memory.NewStore()
	user, err := store.Users().Create(context.Background(), &domain.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "x",
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	token, err := store.Sessions().Create(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return store, user, token
}

func echoContext(token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSession_InjectsIdentity(t *testing.T) {
	store, user, token := newSessionFixture(t)
	c, _ := echoContext(token)

	called := false
	handler := Session(store.Sessions(), store.Users())(func(c echo.Context) error {
		called = true
		if got, _ := c.Get(CtxUserID).(int64); got != user.ID {
			t.Fatalf("unexpected user id in context: %v", c.Get(CtxUserID))
		}
		if admin, _ := c.Get(CtxIsAdmin).(bool); admin {
			t.Fatalf("user is not admin")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestSession_CookieToken(t *testing.T) {
	store, user, token := newSessionFixture(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Session(store.Sessions(), store.Users())(func(c echo.Context) error {
		if got, _ := c.Get(CtxUserID).(int64); got != user.ID {
			t.Fatalf("cookie token did not resolve: %v", c.Get(CtxUserID))
		}
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestSession_MissingOrUnknownToken(t *testing.T) {
	store, _, _ := newSessionFixture(t)
	mw := Session(store.Sessions(), store.Users())
	next := func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	}

	c, _ := echoContext("")
	if err := mw(next)(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated for missing token, got %v", err)
	}

	c, _ = echoContext("bogus-token")
	if err := mw(next)(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated for unknown token, got %v", err)
	}
}

func TestSession_FlagChangeVisibleNextRequest(t *testing.T) {
	store, user, token := newSessionFixture(t)
	mw := Session(store.Sessions(), store.Users())

	read := func() bool {
		var vip bool
		c, _ := echoContext(token)
		if err := mw(func(c echo.Context) error {
			vip, _ = c.Get(CtxIsVip).(bool)
			return nil
		})(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		return vip
	}

	if read() {
		t.Fatalf("user should not start as vip")
	}
	if _, err := store.Users().GrantVip(context.Background(), user.ID); err != nil {
		t.Fatalf("grant: %v", err)
	}
	if !read() {
		t.Fatalf("flag change must be visible on the next request")
	}
}

func TestOptionalSession_AnonymousProceeds(t *testing.T) {
	store, _, _ := newSessionFixture(t)
	c, _ := echoContext("")

	called := false
	handler := OptionalSession(store.Sessions(), store.Users())(func(c echo.Context) error {
		called = true
		if c.Get(CtxUser) != nil {
			t.Fatalf("anonymous request must not carry an identity")
		}
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}
